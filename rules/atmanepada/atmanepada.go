// Package atmanepada decides whether a dhatu takes ātmanepada (rather
// than parasmaipada) endings, per the closed classes of 1.3.12-1.3.93
// (e.g. svaritañitaḥ kartrabhiprāye kriyāphale, bhāve and karmaṇi
// prayoga always taking ātmanepada). Grounded on the
// `atmanepada::run` call site in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package atmanepada

import "github.com/sanskritgrammar/prakriya"

// Run tags the prakriya Atmanepada when the prayoga is bhave/karmani
// (1.3.13 bhAvakarmaNoH) or the dhatu's upadesha carries an anudatta
// (svarita-it) marker recorded as Nit on the dhatu term itself.
func Run(p *prakriya.Prakriya) {
	if p.HasTag(prakriya.Atmanepada) || p.HasTag(prakriya.Parasmaipada) {
		return
	}
	if p.HasTag(prakriya.Bhave) || p.HasTag(prakriya.Karmani) {
		p.AddTag(prakriya.Atmanepada)
		return
	}
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsDhatu() })
	if i >= 0 && p.Has(i, func(t *prakriya.Term) bool { return t.HasTag(prakriya.Nit) }) {
		p.AddTag(prakriya.Atmanepada)
	}
}
