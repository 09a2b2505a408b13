package label

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	// Tesseract reads a trailing unit "g" as the digit "9" when it stands
	// apart from the number. Only repair the spaced form: without the gap the
	// run is indistinguishable from a digit-merge artifact, which the
	// sanitizer handles instead.
	trailingNineRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+9\b`)
	// mg misreads: mq, m9, rng.
	mgMisreadRE = regexp.MustCompile(`(?i)(\d)\s*(?:mq|m9|rng)\b`)

	unicodeFold = transform.Chain(norm.NFKC, width.Fold)
)

// Normalize repairs known OCR misreads in a label text: Unicode composition
// and full-width folding (Korean OCR emits decomposed jamo and full-width
// digits), the literal keyword typo table, digit/unit confusions, then a
// whitespace collapse. Idempotent: applying it twice equals applying it once.
func Normalize(text string) string {
	if folded, _, err := transform.String(unicodeFold, text); err == nil {
		text = folded
	}
	for _, r := range keywordTypos {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	text = trailingNineRE.ReplaceAllString(text, "$1 g")
	text = mgMisreadRE.ReplaceAllString(text, "$1 mg")
	return strings.Join(strings.Fields(text), " ")
}

// normalizeLines applies the same repairs line by line, preserving the line
// structure the raw OCR output had. The line-scan extraction strategy needs
// it: Normalize itself collapses newlines away.
func normalizeLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, ln := range raw {
		ln = Normalize(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// stripSpaces removes every whitespace rune. OCR frequently loses the gap
// between a keyword and its digits; matching against the compact form
// recovers those runs.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}
