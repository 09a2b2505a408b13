package label

import "testing"

func fieldVal(t *testing.T, r *Record, id FieldID) (float64, string) {
	t.Helper()
	f := r.Get(id)
	if !f.Present() {
		t.Fatalf("field %s: expected a value, got none", id)
	}
	return *f.Value, *f.Unit
}

func wantField(t *testing.T, r *Record, id FieldID, value float64, unit string) {
	t.Helper()
	v, u := fieldVal(t, r, id)
	if v != value || u != unit {
		t.Errorf("field %s = %v %s, want %v %s", id, v, u, value, unit)
	}
}

func wantAbsent(t *testing.T, r *Record, id FieldID) {
	t.Helper()
	f := r.Get(id)
	if f.Present() {
		t.Errorf("field %s: expected absent, got %v %v", id, *f.Value, *f.Unit)
	}
}

func TestAnalyzeDenseLabelRun(t *testing.T) {
	rec := Analyze("열량192kcal 탄수화물28g9% 당류13g13% 단백질2g4% 지방9g17% 나트륨160mg8%")
	wantField(t, rec, Calories, 192, "kcal")
	wantField(t, rec, Carbohydrates, 28, "g")
	wantField(t, rec, Sugar, 13, "g")
	wantField(t, rec, Protein, 2, "g")
	wantField(t, rec, Fat, 9, "g")
	wantField(t, rec, Sodium, 160, "mg")
	wantAbsent(t, rec, SaturatedFat)
	wantAbsent(t, rec, TransFat)
	wantAbsent(t, rec, Cholesterol)
}

func TestAnalyzeKeywordAdjacent(t *testing.T) {
	rec := Analyze("영양정보 나트륨: 520 mg 당류 7 g 단백질 - 11g")
	wantField(t, rec, Sodium, 520, "mg")
	wantField(t, rec, Sugar, 7, "g")
	wantField(t, rec, Protein, 11, "g")
}

func TestAnalyzeCompactRun(t *testing.T) {
	// OCR lost every space
	rec := Analyze("열량250kcal나트륨300mg당류22g")
	wantField(t, rec, Calories, 250, "kcal")
	wantField(t, rec, Sodium, 300, "mg")
	wantField(t, rec, Sugar, 22, "g")
}

func TestAnalyzeDefaultUnits(t *testing.T) {
	rec := Analyze("당류 13 나트륨 160 열량 192")
	wantField(t, rec, Sugar, 13, "g")
	wantField(t, rec, Sodium, 160, "mg")
	wantField(t, rec, Calories, 192, "kcal")
}

func TestAnalyzeLineScanFallthrough(t *testing.T) {
	// value wrapped onto the next line; no adjacent or compact match
	rec := Analyze("당류 함량은 아래와 같음\n13 g")
	wantField(t, rec, Sugar, 13, "g")
}

func TestAnalyzeGlobalFallback(t *testing.T) {
	// no keyword at all: a lone mg figure inside the plausible window is
	// taken as sodium, a lone kcal figure as calories
	rec := Analyze("영양성분 기타 550 mg 350 kcal")
	wantField(t, rec, Sodium, 550, "mg")
	wantField(t, rec, Calories, 350, "kcal")
	wantAbsent(t, rec, Sugar)
	wantAbsent(t, rec, Carbohydrates)
}

func TestAnalyzeFatExclusions(t *testing.T) {
	rec := Analyze("포화지방 3g 트랜스지방 0.5g 지방 10g")
	wantField(t, rec, SaturatedFat, 3, "g")
	wantField(t, rec, TransFat, 0.5, "g")
	wantField(t, rec, Fat, 10, "g")
}

func TestAnalyzeEnglishLabel(t *testing.T) {
	rec := Analyze("Calories 210 kcal, Sodium 380 mg, Sugars 18 g, Protein 5 g")
	wantField(t, rec, Calories, 210, "kcal")
	wantField(t, rec, Sodium, 380, "mg")
	wantField(t, rec, Sugar, 18, "g")
	wantField(t, rec, Protein, 5, "g")
}

func TestAnalyzeTypoKeywords(t *testing.T) {
	rec := Analyze("열망 192kcal 나트룹 160mg 딩류 13g")
	wantField(t, rec, Calories, 192, "kcal")
	wantField(t, rec, Sodium, 160, "mg")
	wantField(t, rec, Sugar, 13, "g")
}

func TestAnalyzeDecimalComma(t *testing.T) {
	rec := Analyze("트랜스지방 0,5g")
	wantField(t, rec, TransFat, 0.5, "g")
}

func TestServingSize(t *testing.T) {
	rec := Analyze("총 내용량 500ml 나트륨 100mg")
	if rec.ServingSize == nil {
		t.Fatal("expected serving size")
	}
	if *rec.ServingSize != "500ml" {
		t.Errorf("serving size = %q, want %q", *rec.ServingSize, "500ml")
	}

	rec = Analyze("1회 제공량 30g")
	if rec.ServingSize == nil || *rec.ServingSize != "30g" {
		t.Errorf("serving size = %v, want 30g", rec.ServingSize)
	}
}

func TestAnalyzeNoRecognizableContent(t *testing.T) {
	for _, in := range []string{"", "  \n\t ", "qwerty asdf 게임기", "아무 키워드도 없는 문장"} {
		rec := Analyze(in)
		for _, id := range FieldIDs {
			wantAbsent(t, rec, id)
		}
		if rec.ServingSize != nil {
			t.Errorf("input %q: expected nil serving size", in)
		}
		if rec.Allergens != nil {
			t.Errorf("input %q: expected nil allergens, got %v", in, rec.Allergens)
		}
	}
}
