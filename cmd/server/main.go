// Command server exposes the prakriya derivation engine as a JSON REST
// API.
//
// Endpoints:
//
//	POST /api/derive/dhatu        body: {"upadesha":"BU","gana":1}
//	POST /api/derive/tinanta      body: {"upadesha":"BU","gana":1,"lakara":"lat","prayoga":"kartari","purusha":"prathama","vacana":"eka"}
//	POST /api/derive/subanta      body: {"text":"rAma","linga":"pum","vibhakti":1,"vacana":"eka"}
//	POST /api/derive/krdanta      body: {"upadesha":"tF","gana":1,"krt":"tfc"}
//	POST /api/derive/taddhitanta  body: {"text":"aSvala","taddhita":"Pak"}
//	POST /api/derive/samasa       body: {"padas":[{"text":"rAma","linga":"pum","vibhakti":6},{"text":"priya","linga":"pum","vibhakti":1}]}
//	POST /api/derive/vakya        body: {"padas":[{"kind":"dummy","text":"rAmaH"},{"kind":"dummy","text":"gacCati"}]}
//	POST /api/explore/tinanta     body: same as /api/derive/tinanta, returns every optional-rule variant
//	POST /api/explore             body: {"kind":"tinanta", ...tinanta fields}; "kind" selects the explore
//	                              variant -- only "tinanta" is wired today, since it's the only
//	                              derivation kind this engine's rule set branches on optional rules for.
//	GET  /api/healthz
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/driver"
	"github.com/sanskritgrammar/prakriya/explorer"
	"github.com/sanskritgrammar/prakriya/logx"
)

type errorResponse struct {
	Error string `json:"error"`
}

type deriveResponse struct {
	Text    string             `json:"text"`
	History []historyEntryJSON `json:"history,omitempty"`
}

type historyEntryJSON struct {
	Rule  string   `json:"rule"`
	Texts []string `json:"texts"`
}

type exploreResponse struct {
	Results []string `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toHistoryJSON(p *prakriya.Prakriya) []historyEntryJSON {
	hist := p.History()
	out := make([]historyEntryJSON, 0, len(hist))
	for _, h := range hist {
		out = append(out, historyEntryJSON{Rule: h.Rule.String(), Texts: h.Snapshot})
	}
	return out
}

type tinantaRequest struct {
	Upadesha string `json:"upadesha"`
	Gana     int    `json:"gana"`
	Lakara   string `json:"lakara"`
	Prayoga  string `json:"prayoga"`
	Purusha  string `json:"purusha"`
	Vacana   string `json:"vacana"`
}

var lakaraByName = map[string]args.Lakara{
	"lat": args.Lat, "lit": args.Lit, "lut": args.Lut, "lrt": args.Lrt,
	"let": args.Let, "lot": args.Lot, "lan": args.Lan,
	"ashirlin": args.AshirLin, "vidhilin": args.VidhiLin, "lun": args.Lun, "lrn": args.Lrn,
}

var prayogaByName = map[string]args.Prayoga{
	"kartari": args.Kartari, "bhave": args.Bhave, "karmani": args.Karmani,
}

var purushaByName = map[string]args.Purusha{
	"prathama": args.Prathama, "madhyama": args.Madhyama, "uttama": args.Uttama,
}

var vacanaByName = map[string]args.Vacana{
	"eka": args.Eka, "dvi": args.Dvi, "bahu": args.Bahu,
}

func (req tinantaRequest) toTinanta() *args.Tinanta {
	dhatu := args.FromMula(args.NewMula(req.Upadesha, args.Gana(req.Gana)))
	return args.NewTinanta(dhatu, lakaraByName[req.Lakara], prayogaByName[req.Prayoga], purushaByName[req.Purusha], vacanaByName[req.Vacana])
}

func handleDeriveTinanta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req tinantaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p := prakriya.New()
	result, err := driver.DeriveTinanta(p, req.toTinanta())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

func exploreTinanta(a *args.Tinanta) exploreResponse {
	stack := explorer.New(false, false, false)
	stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
		return driver.DeriveTinanta(seed, a)
	})
	seen := make(map[string]bool)
	var out []string
	for _, p := range stack.Prakriyas() {
		if t := p.Text(); !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return exploreResponse{Results: out}
}

func handleExploreTinanta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req tinantaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, exploreTinanta(req.toTinanta()))
}

type dhatuRequest struct {
	Upadesha string `json:"upadesha"`
	Gana     int    `json:"gana"`
}

func handleDeriveDhatu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req dhatuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p := prakriya.New()
	dhatu := args.FromMula(args.NewMula(req.Upadesha, args.Gana(req.Gana)))
	result, err := driver.DeriveDhatu(p, dhatu)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

type subantaRequest struct {
	Text     string `json:"text"`
	Linga    string `json:"linga"`
	Vibhakti int    `json:"vibhakti"`
	Vacana   string `json:"vacana"`
}

var lingaByName = map[string]args.Linga{"pum": args.Pum, "stri": args.Stri, "napumsaka": args.Napumsaka}

func handleDeriveSubanta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req subantaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p := prakriya.New()
	pratipadika := args.NewBasic(req.Text)
	a := args.NewSubanta(pratipadika, lingaByName[req.Linga], args.Vibhakti(req.Vibhakti), vacanaByName[req.Vacana])
	result, err := driver.DeriveSubanta(p, a)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

var baseKrtByName = map[string]args.BaseKrt{
	"tfc": args.Tfc, "lyuw": args.Lyuw, "ac": args.Ac, "vic": args.Vic,
	"ghan": args.GhaN, "ktavatu": args.Ktavatu, "ktva": args.Ktva,
}

type krdantaRequest struct {
	Upadesha string `json:"upadesha"`
	Gana     int    `json:"gana"`
	Krt      string `json:"krt"`
}

func handleDeriveKrdanta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req krdantaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	dhatu := args.FromMula(args.NewMula(req.Upadesha, args.Gana(req.Gana)))
	a := &args.Krdanta{DhatuValue: dhatu, KrtValue: baseKrtByName[req.Krt]}
	result, err := driver.DeriveKrdanta(prakriya.New(), a)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

var taddhitaByName = map[string]args.Taddhita{"pak": args.Pak, "ashtadhyayi": args.Ashtadhyayi}

type taddhitantaRequest struct {
	Text     string `json:"text"`
	Taddhita string `json:"taddhita"`
}

func handleDeriveTaddhitanta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req taddhitantaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	a := &args.Taddhitanta{PratipadikaValue: args.NewBasic(req.Text), TaddhitaValue: taddhitaByName[req.Taddhita]}
	result, err := driver.DeriveTaddhitanta(prakriya.New(), a)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

type samasaPadaRequest struct {
	Text     string `json:"text"`
	Linga    string `json:"linga"`
	Vibhakti int    `json:"vibhakti"`
	Avyaya   bool   `json:"avyaya"`
}

type samasaRequest struct {
	Padas []samasaPadaRequest `json:"padas"`
	Type  string              `json:"type"`
}

var samasaTypeByName = map[string]args.SamasaType{
	"tatpurusha": args.Tatpurusha, "avyayibhava": args.Avyayibhava,
	"bahuvrihi": args.Bahuvrihi, "dvandva": args.Dvandva,
}

func handleDeriveSamasa(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req samasaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	padas := make([]args.SamasaPada, 0, len(req.Padas))
	for _, pr := range req.Padas {
		padas = append(padas, args.SamasaPada{
			PratipadikaValue: args.NewBasic(pr.Text),
			VibhaktiValue:    args.Vibhakti(pr.Vibhakti),
			AvyayaValue:      pr.Avyaya,
		})
	}
	a := &args.Samasa{PadasValue: padas, TypeValue: samasaTypeByName[req.Type]}
	result, err := driver.DeriveSamasa(prakriya.New(), a)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

type vakyaPadaRequest struct {
	Kind string `json:"kind"` // "dummy" or "nipata"; subanta/tinanta padas are out of scope for this endpoint's wire format
	Text string `json:"text"`
}

type vakyaRequest struct {
	Padas []vakyaPadaRequest `json:"padas"`
}

func handleDeriveVakya(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req vakyaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	padas := make([]args.Pada, 0, len(req.Padas))
	for _, pr := range req.Padas {
		if pr.Kind == "nipata" {
			padas = append(padas, args.PadaFromNipata(pr.Text))
			continue
		}
		padas = append(padas, args.PadaFromDummy(pr.Text))
	}
	result, err := driver.DeriveVakya(prakriya.New(), padas)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deriveResponse{Text: result.Text(), History: toHistoryJSON(result)})
}

type exploreRequest struct {
	Kind string `json:"kind"`
	tinantaRequest
}

func handleExplore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req exploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Kind != "tinanta" {
		writeError(w, http.StatusBadRequest, "unsupported kind (only \"tinanta\" is wired)")
		return
	}
	writeJSON(w, http.StatusOK, exploreTinanta(req.tinantaRequest.toTinanta()))
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	pretty := flag.Bool("pretty-log", false, "use a human-readable console log instead of JSON")
	flag.Parse()

	log := logx.New(os.Stderr, *pretty)
	logx.Configure(log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/derive/dhatu", handleDeriveDhatu)
	mux.HandleFunc("/api/derive/tinanta", handleDeriveTinanta)
	mux.HandleFunc("/api/derive/subanta", handleDeriveSubanta)
	mux.HandleFunc("/api/derive/krdanta", handleDeriveKrdanta)
	mux.HandleFunc("/api/derive/taddhitanta", handleDeriveTaddhitanta)
	mux.HandleFunc("/api/derive/samasa", handleDeriveSamasa)
	mux.HandleFunc("/api/derive/vakya", handleDeriveVakya)
	mux.HandleFunc("/api/explore/tinanta", handleExploreTinanta)
	mux.HandleFunc("/api/explore", handleExplore)
	mux.HandleFunc("/api/healthz", handleHealthz)

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
