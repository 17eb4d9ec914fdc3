// Command derive is a CLI front end for the prakriya derivation engine:
// one subcommand per derivation kind, printing the resulting surface
// form and (with -trace) the full rule history.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/hashicorp/cli"
	"github.com/k0kubun/pp"

	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/driver"
	"github.com/sanskritgrammar/prakriya/explorer"
)

func main() {
	c := cli.NewCLI("derive", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"dhatu":       func() (cli.Command, error) { return &dhatuCommand{}, nil },
		"tinanta":     func() (cli.Command, error) { return &tinantaCommand{}, nil },
		"subanta":     func() (cli.Command, error) { return &subantaCommand{}, nil },
		"krdanta":     func() (cli.Command, error) { return &krdantaCommand{}, nil },
		"taddhitanta": func() (cli.Command, error) { return &taddhitantaCommand{}, nil },
		"samasa":      func() (cli.Command, error) { return &samasaCommand{}, nil },
		"explore":     func() (cli.Command, error) { return &exploreCommand{}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}

// printResult prints a completed derivation's surface form, and its
// rule-by-rule history when trace is set.
func printResult(p *prakriya.Prakriya, trace bool) {
	color.Greenln(p.Text())
	if !trace {
		return
	}
	for _, h := range p.History() {
		if h.Debug != "" {
			color.Blueln("-- " + h.Debug)
			continue
		}
		fmt.Printf("%s: ", h.Rule.String())
		pp.Println(h.Snapshot)
	}
}

func parseGana(s string) args.Gana {
	n, _ := strconv.Atoi(s)
	return args.Gana(n)
}

var lakaraNames = map[string]args.Lakara{
	"lat": args.Lat, "lit": args.Lit, "lut": args.Lut, "lrt": args.Lrt,
	"let": args.Let, "lot": args.Lot, "lan": args.Lan,
	"ashirlin": args.AshirLin, "vidhilin": args.VidhiLin, "lun": args.Lun, "lrn": args.Lrn,
}

var prayogaNames = map[string]args.Prayoga{"kartari": args.Kartari, "bhave": args.Bhave, "karmani": args.Karmani}
var purushaNames = map[string]args.Purusha{"prathama": args.Prathama, "madhyama": args.Madhyama, "uttama": args.Uttama}
var vacanaNames = map[string]args.Vacana{"eka": args.Eka, "dvi": args.Dvi, "bahu": args.Bahu}
var lingaNames = map[string]args.Linga{"pum": args.Pum, "stri": args.Stri, "napumsaka": args.Napumsaka}

// dhatuCommand derives a bare dhatu: `derive dhatu BU 1`.
type dhatuCommand struct{}

func (c *dhatuCommand) Help() string     { return "Usage: derive dhatu <upadesha> <gana> [-trace]" }
func (c *dhatuCommand) Synopsis() string { return "Derive a single dhatu" }
func (c *dhatuCommand) Run(args_ []string) int {
	flags, trace := stripTrace(args_)
	if len(flags) < 2 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	dhatu := args.FromMula(args.NewMula(flags[0], parseGana(flags[1])))
	result, err := driver.DeriveDhatu(prakriya.New(), dhatu)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

// tinantaCommand derives a finite verb form:
// `derive tinanta BU 1 lat kartari prathama eka`.
type tinantaCommand struct{}

func (c *tinantaCommand) Help() string {
	return "Usage: derive tinanta <upadesha> <gana> <lakara> <prayoga> <purusha> <vacana> [-trace]"
}
func (c *tinantaCommand) Synopsis() string { return "Derive a single finite verb form" }
func (c *tinantaCommand) Run(argv []string) int {
	flags, trace := stripTrace(argv)
	if len(flags) < 6 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	a := buildTinanta(flags)
	result, err := driver.DeriveTinanta(prakriya.New(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

func buildTinanta(flags []string) *args.Tinanta {
	dhatu := args.FromMula(args.NewMula(flags[0], parseGana(flags[1])))
	return args.NewTinanta(dhatu, lakaraNames[flags[2]], prayogaNames[flags[3]], purushaNames[flags[4]], vacanaNames[flags[5]])
}

// subantaCommand derives a nominal form: `derive subanta rAma pum 1 eka`.
type subantaCommand struct{}

func (c *subantaCommand) Help() string {
	return "Usage: derive subanta <text> <linga> <vibhakti> <vacana> [-trace]"
}
func (c *subantaCommand) Synopsis() string { return "Derive a single nominal form" }
func (c *subantaCommand) Run(argv []string) int {
	flags, trace := stripTrace(argv)
	if len(flags) < 4 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	vibhakti, _ := strconv.Atoi(flags[2])
	pratipadika := args.NewBasic(flags[0])
	a := args.NewSubanta(pratipadika, lingaNames[flags[1]], args.Vibhakti(vibhakti), vacanaNames[flags[3]])
	result, err := driver.DeriveSubanta(prakriya.New(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

var baseKrtNames = map[string]args.BaseKrt{
	"tfc": args.Tfc, "lyuw": args.Lyuw, "ac": args.Ac, "vic": args.Vic,
	"ghan": args.GhaN, "ktavatu": args.Ktavatu, "ktva": args.Ktva,
}

var taddhitaNames = map[string]args.Taddhita{"pak": args.Pak, "ashtadhyayi": args.Ashtadhyayi}

var samasaTypeNames = map[string]args.SamasaType{
	"tatpurusha": args.Tatpurusha, "avyayibhava": args.Avyayibhava,
	"bahuvrihi": args.Bahuvrihi, "dvandva": args.Dvandva,
}

// krdantaCommand derives a krt-pratyayanta nominal stem:
// `derive krdanta tF 1 tfc`.
type krdantaCommand struct{}

func (c *krdantaCommand) Help() string {
	return "Usage: derive krdanta <upadesha> <gana> <krt> [-trace]"
}
func (c *krdantaCommand) Synopsis() string { return "Derive a krt-pratyayanta nominal stem" }
func (c *krdantaCommand) Run(argv []string) int {
	flags, trace := stripTrace(argv)
	if len(flags) < 3 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	dhatu := args.FromMula(args.NewMula(flags[0], parseGana(flags[1])))
	a := &args.Krdanta{DhatuValue: dhatu, KrtValue: baseKrtNames[flags[2]]}
	result, err := driver.DeriveKrdanta(prakriya.New(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

// taddhitantaCommand derives a taddhita-pratyayanta nominal stem:
// `derive taddhitanta aSvala pak`.
type taddhitantaCommand struct{}

func (c *taddhitantaCommand) Help() string {
	return "Usage: derive taddhitanta <text> <taddhita> [-trace]"
}
func (c *taddhitantaCommand) Synopsis() string { return "Derive a taddhita-pratyayanta nominal stem" }
func (c *taddhitantaCommand) Run(argv []string) int {
	flags, trace := stripTrace(argv)
	if len(flags) < 2 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	a := &args.Taddhitanta{PratipadikaValue: args.NewBasic(flags[0]), TaddhitaValue: taddhitaNames[flags[1]]}
	result, err := driver.DeriveTaddhitanta(prakriya.New(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

// samasaCommand derives a two-pada compound:
// `derive samasa tatpurusha rAma 6 priya 1`.
type samasaCommand struct{}

func (c *samasaCommand) Help() string {
	return "Usage: derive samasa <type> <text1> <vibhakti1> <text2> <vibhakti2> [-trace]"
}
func (c *samasaCommand) Synopsis() string { return "Derive a two-pada samasa" }
func (c *samasaCommand) Run(argv []string) int {
	flags, trace := stripTrace(argv)
	if len(flags) < 5 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	v1, _ := strconv.Atoi(flags[2])
	v2, _ := strconv.Atoi(flags[4])
	padas := []args.SamasaPada{
		{PratipadikaValue: args.NewBasic(flags[1]), VibhaktiValue: args.Vibhakti(v1)},
		{PratipadikaValue: args.NewBasic(flags[3]), VibhaktiValue: args.Vibhakti(v2)},
	}
	a := &args.Samasa{PadasValue: padas, TypeValue: samasaTypeNames[flags[0]]}
	result, err := driver.DeriveSamasa(prakriya.New(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printResult(result, trace)
	return 0
}

// exploreCommand runs every optional-rule variant of a tinanta
// derivation and prints each distinct surface form found.
type exploreCommand struct{}

func (c *exploreCommand) Help() string {
	return "Usage: derive explore tinanta <upadesha> <gana> <lakara> <prayoga> <purusha> <vacana>"
}
func (c *exploreCommand) Synopsis() string { return "Enumerate every optional-rule variant" }
func (c *exploreCommand) Run(argv []string) int {
	if len(argv) < 7 || argv[0] != "tinanta" {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}
	a := buildTinanta(argv[1:7])
	stack := explorer.New(false, false, false)
	stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
		return driver.DeriveTinanta(seed, a)
	})
	seen := make(map[string]bool)
	for _, p := range stack.Prakriyas() {
		if t := p.Text(); !seen[t] {
			seen[t] = true
			color.Green.Println(t)
		}
	}
	return 0
}

// stripTrace pulls a trailing "-trace" flag out of argv, wherever it
// appears, and reports whether it was present.
func stripTrace(argv []string) ([]string, bool) {
	out := make([]string, 0, len(argv))
	trace := false
	for _, a := range argv {
		if strings.TrimSpace(a) == "-trace" {
			trace = true
			continue
		}
		out = append(out, a)
	}
	return out, trace
}
