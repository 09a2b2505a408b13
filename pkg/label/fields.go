package label

import (
	"regexp"
	"strings"
)

// numberPat matches a decimal number with either separator; OCR swaps comma
// and dot freely.
const numberPat = `(\d+(?:[.,]\d+)?)`

// fieldSpec describes how one nutrition field is recognized: keyword
// synonyms (canonical Korean term, surviving misreads, English), the unit
// vocabulary, and the optional last-resort window for a bare number+unit hit.
type fieldSpec struct {
	id       FieldID
	keywords []string
	// exclude lists terms that disqualify a keyword occurrence when they
	// immediately precede it (지방 inside 포화지방 must not count as fat).
	exclude     []string
	units       string // regex alternation of accepted unit tokens
	defaultUnit string

	// global fallback window; empty fallbackUnit disables the strategy
	fallbackUnit string
	fallbackMin  float64
	fallbackMax  float64

	adjacentRE *regexp.Regexp
	compactRE  *regexp.Regexp
	pairRE     *regexp.Regexp
	keywordRE  *regexp.Regexp
	numUnitRE  *regexp.Regexp
	fallbackRE *regexp.Regexp
}

var fieldSpecs = map[FieldID]*fieldSpec{}

func init() {
	specs := []*fieldSpec{
		{
			id:           Calories,
			keywords:     []string{"열량", "칼로리", "calories", "calorie", "energy"},
			units:        `kcal|킬로칼로리|cal|%`,
			defaultUnit:  "kcal",
			fallbackUnit: "kcal",
			fallbackMin:  10,
			fallbackMax:  1500,
		},
		{
			id:          Carbohydrates,
			keywords:    []string{"탄수화물", "carbohydrates", "carbohydrate", "carbs"},
			units:       `g|mg|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          Sugar,
			keywords:    []string{"당류", "sugars", "sugar"},
			units:       `g|mg|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          Protein,
			keywords:    []string{"단백질", "protein"},
			units:       `g|mg|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          Fat,
			keywords:    []string{"지방", "fat"},
			exclude:     []string{"포화", "트랜스", "saturated", "trans"},
			units:       `g|mg|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          SaturatedFat,
			keywords:    []string{"포화지방", "saturated fat"},
			units:       `g|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          TransFat,
			keywords:    []string{"트랜스지방", "trans fat"},
			units:       `g|그램|%`,
			defaultUnit: "g",
		},
		{
			id:          Cholesterol,
			keywords:    []string{"콜레스테롤", "cholesterol"},
			units:       `mg|g|%`,
			defaultUnit: "mg",
		},
		{
			id:           Sodium,
			keywords:     []string{"나트륨", "소금", "염분", "sodium", "na"},
			units:        `mg|g|%`,
			defaultUnit:  "mg",
			fallbackUnit: "mg",
			fallbackMin:  50,
			fallbackMax:  999,
		},
	}
	for _, s := range specs {
		s.compile()
		fieldSpecs[s.id] = s
	}
}

func (s *fieldSpec) compile() {
	kw := s.keywordAlt()
	unit := `(` + s.units + `)`
	s.adjacentRE = regexp.MustCompile(`(?i)` + kw + `\s*[:\-]?\s*` + numberPat + `\s*` + unit + `?`)
	s.compactRE = regexp.MustCompile(`(?i)` + kw + `[:\-]?` + numberPat + unit + `?`)
	s.pairRE = regexp.MustCompile(`(?i)` + kw + `\s*[:\-]?\s*` + numberPat + `\s*` + unit + `\s*` + numberPat + `\s*%`)
	s.keywordRE = regexp.MustCompile(`(?i)` + kw)
	s.numUnitRE = regexp.MustCompile(`(?i)` + numberPat + `\s*` + unit + `?`)
	if s.fallbackUnit != "" {
		s.fallbackRE = regexp.MustCompile(`(?i)` + numberPat + `\s*` + s.fallbackUnit + `\b`)
	}
}

// keywordAlt builds the non-capturing keyword alternation. ASCII terms get
// word boundaries so "na" cannot fire inside an English word; Hangul terms
// are matched literally (RE2 word boundaries do not apply to them).
func (s *fieldSpec) keywordAlt() string {
	alts := make([]string, 0, len(s.keywords))
	for _, k := range s.keywords {
		q := regexp.QuoteMeta(k)
		q = strings.ReplaceAll(q, ` `, `\s*`)
		if isASCII(k) {
			q = `\b` + q + `\b`
		}
		alts = append(alts, q)
	}
	return `(?:` + strings.Join(alts, `|`) + `)`
}

// excludedAt reports whether the keyword occurrence starting at pos is
// preceded by one of the disqualifying terms.
func (s *fieldSpec) excludedAt(text string, pos int) bool {
	if len(s.exclude) == 0 {
		return false
	}
	prefix := strings.ToLower(strings.TrimRight(text[:pos], " \t"))
	for _, ex := range s.exclude {
		if strings.HasSuffix(prefix, strings.ToLower(ex)) {
			return true
		}
	}
	return false
}

// containsKeyword reports whether line holds a non-excluded keyword
// occurrence, returning the byte offset just past the first one.
func (s *fieldSpec) containsKeyword(line string) (int, bool) {
	for _, loc := range s.keywordRE.FindAllStringIndex(line, -1) {
		if !s.excludedAt(line, loc[0]) {
			return loc[1], true
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
