// Package dvitva implements the doubling (reduplication) engine, C5 of
// SPEC_FULL.md: the representative non-trivial segmental rewriter that
// computes the abhyasa segment and inserts it under the four triggers
// (liT, san/yaN, slu, caN), preserving all prakriya invariants.
//
// Grounded directly on original_source/vidyut-prakriya/src/dvitva.rs.
package dvitva

import "github.com/sanskritgrammar/prakriya"

// FindAbhyasaSpan scans text left-to-right for the span that should be
// duplicated (§4.5.1). Returns (start, end, true) on success.
//
// Start: first consonant, except a consonant that begins a conjunct
// (followed by another consonant) and belongs to {n, d, r} (6.1.3 na
// ndrah samyogadayah) — b also participates in the skip by varttika
// (ubjijishati) — unless that consonant is r followed by y, which is
// not skipped (yakara-parasya rephasya pratisedho na bhavati).
// End: first vowel at or after start.
func FindAbhyasaSpan(text string) (start, end int, ok bool) {
	start, end = -1, -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if start < 0 && prakriya.Hal.Contains(c) {
			if i < len(text)-1 {
				next := text[i+1]
				if (prakriya.Ndr.Contains(c) || c == 'b') && prakriya.Hal.Contains(next) {
					if c == 'r' && next == 'y' {
						// yakara-parasya rephasya pratisedho na bhavati: do not skip.
					} else {
						continue
					}
				}
			}
			start = i
		}
		if start >= 0 && prakriya.Ac.Contains(c) {
			end = i
			break
		}
	}
	if start >= 0 && end >= 0 {
		return start, end, true
	}
	return 0, 0, false
}
