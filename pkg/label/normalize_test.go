package label

import (
	"strings"
	"testing"
)

func TestNormalizeTypoCorrections(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"나트룹 160mg", "나트륨 160mg"},
		{"나트름 160mg", "나트륨 160mg"},
		{"열망 192kcal", "열량 192kcal"},
		{"탄수회물 28g", "탄수화물 28g"},
		{"딩류 13g", "당류 13g"},
		{"단벡질 2g", "단백질 2g"},
		{"포회지방 3g", "포화지방 3g"},
		{"트렌스지방 0.5g", "트랜스지방 0.5g"},
		{"콜레스태롤 10mg", "콜레스테롤 10mg"},
		{"1회 제공랑 30g", "1회 제공량 30g"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeUnitRepairs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// spaced trailing 9 is a misread g
		{"당류 13 9", "당류 13 g"},
		{"탄수화물 28 9 함유", "탄수화물 28 g 함유"},
		// fused digits stay for the sanitizer to judge
		{"당류 289", "당류 289"},
		{"나트륨 150mq", "나트륨 150 mg"},
		{"나트륨 150 M9", "나트륨 150 mg"},
		{"나트륨 150rng", "나트륨 150 mg"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeUnicodeFolding(t *testing.T) {
	// full-width digits and letters fold to ASCII
	if got := Normalize("열량 １９２ｋｃａｌ"); got != "열량 192kcal" {
		t.Errorf("full-width fold: got %q", got)
	}
	// squared unit glyph
	if got := Normalize("나트륨 160㎎"); got != "나트륨 160mg" {
		t.Errorf("squared mg fold: got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("열량\t192 kcal\n\n나트륨   160mg")
	want := "열량 192 kcal 나트륨 160mg"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"열망 192kcal 탄수회물 28g",
		"나트룹 1400mg7% 딩류 289",
		"당류 13 9 나트륨 150mq",
		"１９２ｋｃａｌ ㎎",
		"아무 의미 없는 텍스트 qwerty 123",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

// No correction may produce text that a later table entry would rewrite
// again, otherwise Normalize stops being idempotent.
func TestNormalizeTableIsIdempotent(t *testing.T) {
	for _, tbl := range [][]replacement{keywordTypos, allergenTypos} {
		for i, a := range tbl {
			for j, b := range tbl {
				if strings.Contains(a.to, b.from) {
					t.Errorf("entry %d output %q contains entry %d input %q", i, a.to, j, b.from)
				}
			}
		}
	}
}
