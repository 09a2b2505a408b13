package label

import (
	"regexp"
	"strconv"
	"strings"
)

// source bundles the text variants the strategies run against: the
// normalized whitespace-collapsed form, its compact (space-stripped) twin,
// and the per-line normalized raw text.
type source struct {
	norm    string
	compact string
	lines   []string
}

func newSource(raw string) *source {
	n := Normalize(raw)
	return &source{norm: n, compact: stripSpaces(n), lines: normalizeLines(raw)}
}

// strategy attempts to recover one field's (value, unit) from the text.
type strategy func(s *fieldSpec, src *source) (float64, string, bool)

// strategies in priority order: precise keyword-adjacent matches first, then
// recall fallbacks. The first success short-circuits the cascade; a later
// strategy never overrides an earlier hit.
var strategies = []strategy{
	matchAdjacent,
	matchCompact,
	matchValueBeforePercent,
	matchLineScan,
	matchGlobalFallback,
}

func extractField(s *fieldSpec, src *source) (float64, string, bool) {
	for _, try := range strategies {
		if v, unit, ok := try(s, src); ok {
			if unit == "" {
				unit = s.defaultUnit
			}
			return v, normalizeUnit(unit), true
		}
	}
	return 0, "", false
}

// matchAdjacent: keyword, optional separator, number, optional unit on the
// whitespace-collapsed text.
func matchAdjacent(s *fieldSpec, src *source) (float64, string, bool) {
	return firstUnexcluded(s.adjacentRE, src.norm, s)
}

// matchCompact: same shape against the space-stripped text, catching runs
// where OCR lost the gap between keyword and digits.
func matchCompact(s *fieldSpec, src *source) (float64, string, bool) {
	return firstUnexcluded(s.compactRE, src.compact, s)
}

// matchValueBeforePercent: "당류 13g 13%" takes the pre-unit number, dropping
// the daily-value percent figure that follows.
func matchValueBeforePercent(s *fieldSpec, src *source) (float64, string, bool) {
	if v, u, ok := firstUnexcluded(s.pairRE, src.norm, s); ok {
		return v, u, true
	}
	return firstUnexcluded(s.pairRE, src.compact, s)
}

// matchLineScan: for a line holding a keyword, take the first number token
// after the keyword, or the first one on the next line. Tolerates labels
// where the value wrapped onto its own line.
func matchLineScan(s *fieldSpec, src *source) (float64, string, bool) {
	for i, line := range src.lines {
		end, ok := s.containsKeyword(line)
		if !ok {
			continue
		}
		if v, u, ok := firstNumberToken(s, line[end:]); ok {
			return v, u, true
		}
		if i+1 < len(src.lines) {
			if v, u, ok := firstNumberToken(s, src.lines[i+1]); ok {
				return v, u, true
			}
		}
	}
	return 0, "", false
}

// matchGlobalFallback: a bare number with the field's typical unit anywhere
// in the text, accepted only inside the field's plausible window. Pure
// recall play; it runs last and only for fields whose unit is distinctive.
func matchGlobalFallback(s *fieldSpec, src *source) (float64, string, bool) {
	if s.fallbackRE == nil {
		return 0, "", false
	}
	for _, m := range s.fallbackRE.FindAllStringSubmatch(src.norm, -1) {
		v, err := parseNumber(m[1])
		if err != nil {
			continue
		}
		if v >= s.fallbackMin && v <= s.fallbackMax {
			return v, s.fallbackUnit, true
		}
	}
	return 0, "", false
}

// firstUnexcluded walks re's matches over text and returns the first one
// whose keyword position is not excluded and whose number parses. Capture
// group 1 is the number, group 2 the optional unit.
func firstUnexcluded(re *regexp.Regexp, text string, s *fieldSpec) (float64, string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if s.excludedAt(text, m[0]) {
			continue
		}
		v, err := parseNumber(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		unit := ""
		if len(m) >= 6 && m[4] >= 0 {
			unit = text[m[4]:m[5]]
		}
		return v, unit, true
	}
	return 0, "", false
}

func firstNumberToken(s *fieldSpec, text string) (float64, string, bool) {
	m := s.numUnitRE.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	v, err := parseNumber(m[1])
	if err != nil {
		return 0, "", false
	}
	return v, m[2], true
}

// parseNumber converts a captured token to a float. A failure is a
// non-match, never an error surfaced to the caller.
func parseNumber(tok string) (float64, error) {
	tok = strings.ReplaceAll(strings.TrimSpace(tok), ",", ".")
	return strconv.ParseFloat(tok, 64)
}

func normalizeUnit(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	switch u {
	case "그램":
		return "g"
	case "킬로칼로리", "cal":
		return "kcal"
	}
	return u
}

var servingRE = regexp.MustCompile(`(?i)(?:1\s*회\s*제공량|총\s*내용량|내용량|serving\s*size)\s*[:\-]?\s*([0-9][0-9.,]*\s*[a-z가-힣]*)`)

// extractServingSize captures the serving-size token verbatim; it is stored
// as free text, not validated.
func extractServingSize(src *source) *string {
	for _, text := range []string{src.norm, src.compact} {
		if m := servingRE.FindStringSubmatch(text); m != nil {
			v := strings.TrimSpace(m[1])
			if v != "" {
				return &v
			}
		}
	}
	return nil
}
