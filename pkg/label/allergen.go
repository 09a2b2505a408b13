package label

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

var (
	allergySectionRE = regexp.MustCompile(`(?:알레르기|알러지)[^:：\n]*[:：]?\s*([^\n]+)`)
	containsClauseRE = regexp.MustCompile(`(?i)(?:함유|포함|\bcontains\b)\s*[:：]?\s*([^\n.]+)`)
	ingredientRE     = regexp.MustCompile(`원재료명?\s*[:：]?\s*([^\n]+)`)
	parenRE          = regexp.MustCompile(`\(([^)]*)\)`)
	wordContextRE    = regexp.MustCompile(`([가-힣A-Za-z]+)\s*(?:함유|포함|사용|첨가|성분|원료)`)
)

// DetectAllergens scans a label text for allergen mentions and returns their
// canonical names, sorted and deduplicated, or nil when none were found.
//
// Long keywords match anywhere; single-character keywords (게, 밀, 콩, ...)
// are ordinary syllables in unrelated words, so they only count standing
// alone inside a span that carries an explicit allergy marker.
func DetectAllergens(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	search := allergenSearchText(text)
	lower := strings.ToLower(search)
	compact := stripSpaces(lower)
	found := map[string]bool{}

	// unconditional pass over the safe multi-character vocabulary
	for kw, canon := range safeAllergens {
		k := strings.ToLower(kw)
		if strings.Contains(lower, k) || strings.Contains(compact, k) {
			found[canon] = true
		}
	}

	// marked spans: allergy labels, contains-clauses, ingredient lists and
	// parentheses holding a known allergen
	for _, span := range allergenSpans(search) {
		for kw, canon := range shortAllergens {
			if hasIsolatedKeyword(span, kw) {
				found[canon] = true
			}
		}
	}

	// "<word> 함유/포함/사용/첨가/성분/원료": the preceding word qualifies
	// only when it is itself a known allergen keyword
	for _, m := range wordContextRE.FindAllStringSubmatch(search, -1) {
		w := strings.ToLower(m[1])
		if canon, ok := safeAllergens[w]; ok {
			found[canon] = true
		} else if canon, ok := shortAllergens[w]; ok {
			found[canon] = true
		}
	}

	// final recall net over the space-stripped raw text
	rawCompact := stripSpaces(strings.ToLower(text))
	for _, kw := range majorAllergens {
		if strings.Contains(rawCompact, kw) {
			found[safeAllergens[kw]] = true
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]string, 0, len(found))
	for k := range found {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// allergenSearchText applies the allergen typo table on top of the Unicode
// folding shared with Normalize. The nutrition keyword table is deliberately
// not applied here.
func allergenSearchText(text string) string {
	if folded, _, err := transform.String(unicodeFold, text); err == nil {
		text = folded
	}
	for _, r := range allergenTypos {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}

// allergenSpans collects the text spans in which short keywords may match.
// Spans found via an allergy label or contains-clause are inherently marked;
// ingredient lists and parentheticals additionally need a marker word (and
// the parenthetical a known allergen) inside the span.
func allergenSpans(text string) []string {
	var spans []string
	for _, m := range allergySectionRE.FindAllStringSubmatch(text, -1) {
		spans = append(spans, m[1])
	}
	for _, m := range containsClauseRE.FindAllStringSubmatch(text, -1) {
		spans = append(spans, m[1])
	}
	for _, m := range ingredientRE.FindAllStringSubmatch(text, -1) {
		if hasMarker(m[1]) {
			spans = append(spans, m[1])
		}
	}
	for _, m := range parenRE.FindAllStringSubmatch(text, -1) {
		if !hasMarker(m[1]) {
			continue
		}
		low := strings.ToLower(m[1])
		for kw := range safeAllergens {
			if strings.Contains(low, strings.ToLower(kw)) {
				spans = append(spans, m[1])
				break
			}
		}
	}
	return spans
}

func hasMarker(span string) bool {
	low := strings.ToLower(span)
	for _, m := range allergenMarkers {
		if strings.Contains(low, m) {
			return true
		}
	}
	return false
}

// hasIsolatedKeyword reports whether kw occurs in span without a Hangul
// syllable glued to either side ("게" in "게 함유" counts, in "게임" it does
// not).
func hasIsolatedKeyword(span, kw string) bool {
	for idx := 0; ; {
		i := strings.Index(span[idx:], kw)
		if i < 0 {
			return false
		}
		p := idx + i
		before, _ := utf8.DecodeLastRuneInString(span[:p])
		after, _ := utf8.DecodeRuneInString(span[p+len(kw):])
		if !isHangulSyllable(before) && !isHangulSyllable(after) {
			return true
		}
		idx = p + len(kw)
	}
}

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}
