// Package label extracts structured nutrition facts and allergen mentions
// from noisy OCR text of food-label packaging. The pipeline is a pure
// function of its input string plus fixed tables: typo normalization, one
// strategy cascade per nutrition field, post-hoc value sanitization and
// allergen detection. It never returns an error and never panics; fields the
// text does not yield stay null.
package label

import "strings"

// Analyze runs the full pipeline over one OCR text and returns a fully
// formed record (possibly all-null).
func Analyze(text string) *Record {
	src := newSource(text)
	rec := &Record{}
	for _, id := range FieldIDs {
		spec := fieldSpecs[id]
		v, unit, ok := extractField(spec, src)
		if !ok {
			continue
		}
		v, ok = SanitizeField(id, v)
		if !ok {
			continue
		}
		rec.setField(id, v, unit)
	}
	rec.ServingSize = extractServingSize(src)
	rec.Allergens = DetectAllergens(text)
	return rec
}

// AnalyzeBilingual runs one pass per language and merges them, preferring
// the primary pass. Used with a translated-to-Korean text as primary and the
// original as secondary, to recover values the translation garbled. An empty
// secondary degrades to a single pass.
func AnalyzeBilingual(primary, secondary string) *Record {
	if strings.TrimSpace(secondary) == "" {
		return Analyze(primary)
	}
	return Merge(Analyze(primary), Analyze(secondary))
}
