package label

import (
	"reflect"
	"testing"
)

func TestDetectAllergensSafeKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"우유 듬뿍 함유", []string{"우유"}},
		{"원재료: 밀가루, 설탕, 계란", []string{"계란", "밀"}},
		{"땅콩과 아몬드가 들어 있습니다", []string{"땅콩", "아몬드"}},
		// compact variant: spacing lost between syllables
		{"우 유 함유 제품", []string{"우유"}},
		{"Contains milk and soy", []string{"대두", "우유"}},
	}
	for _, c := range cases {
		got := DetectAllergens(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("DetectAllergens(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDetectAllergensTypoCorrection(t *testing.T) {
	got := DetectAllergens("땅공 및 게란 포함 제품")
	want := []string{"계란", "땅콩"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDetectAllergensShortKeywordGuard(t *testing.T) {
	// short keyword with an explicit contains marker
	if got := DetectAllergens("게 함유"); !reflect.DeepEqual(got, []string{"게"}) {
		t.Errorf("게 함유: got %v", got)
	}
	// 게임 contains the syllable 게 but carries no allergy context
	if got := DetectAllergens("보드 게임 전용 카드"); got != nil {
		t.Errorf("게임 without marker: got %v, want nil", got)
	}
	// even with a marker elsewhere, 게 glued inside another word must not fire
	if got := DetectAllergens("알레르기 안내: 게임기 설명서"); got != nil {
		t.Errorf("게임기 inside marked span: got %v, want nil", got)
	}
	// allergy-label span licenses short keywords
	got := DetectAllergens("알레르기 유발물질: 게, 메밀")
	if !reflect.DeepEqual(got, []string{"게", "메밀"}) {
		t.Errorf("allergy span: got %v", got)
	}
}

func TestDetectAllergensParenthetical(t *testing.T) {
	got := DetectAllergens("원재료명: 소맥분(대두, 밀 함유), 설탕")
	want := []string{"대두", "밀"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDetectAllergensContextWords(t *testing.T) {
	// word directly before a context marker qualifies only if it is a known
	// allergen keyword
	if got := DetectAllergens("대두 사용 시설에서 제조"); !reflect.DeepEqual(got, []string{"대두"}) {
		t.Errorf("대두 사용: got %v", got)
	}
	if got := DetectAllergens("향료 첨가"); got != nil {
		t.Errorf("향료 첨가: got %v, want nil", got)
	}
}

func TestDetectAllergensEmpty(t *testing.T) {
	if got := DetectAllergens(""); got != nil {
		t.Errorf("empty: got %v", got)
	}
	if got := DetectAllergens("나트륨 160mg 당류 13g"); got != nil {
		t.Errorf("nutrition-only text: got %v", got)
	}
}
