package label

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func rec(mutate func(*Record)) *Record {
	r := &Record{}
	if mutate != nil {
		mutate(r)
	}
	return r
}

func TestMergePrimaryWins(t *testing.T) {
	primary := rec(func(r *Record) {
		r.setField(Sodium, 160, "mg")
	})
	secondary := rec(func(r *Record) {
		r.setField(Sodium, 999, "mg")
		r.setField(Sugar, 15, "g")
	})
	merged := Merge(primary, secondary)
	wantField(t, merged, Sodium, 160, "mg")
	wantField(t, merged, Sugar, 15, "g")
}

func TestMergeAllergensAndServing(t *testing.T) {
	serving := "30g"
	primary := rec(func(r *Record) { r.Allergens = []string{"우유"} })
	secondary := rec(func(r *Record) {
		r.Allergens = []string{"대두", "밀"}
		r.ServingSize = &serving
	})
	merged := Merge(primary, secondary)
	if !reflect.DeepEqual(merged.Allergens, []string{"우유"}) {
		t.Errorf("allergens = %v, want primary's", merged.Allergens)
	}
	if merged.ServingSize == nil || *merged.ServingSize != "30g" {
		t.Errorf("serving size = %v, want 30g from secondary", merged.ServingSize)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	primary := rec(func(r *Record) { r.setField(Sugar, 13, "g") })
	secondary := rec(func(r *Record) { r.setField(Sodium, 300, "mg") })
	merged := Merge(primary, secondary)
	*merged.Sugar.Value = 99
	merged.Allergens = append(merged.Allergens, "우유")
	if *primary.Sugar.Value != 13 {
		t.Errorf("primary mutated: sugar = %v", *primary.Sugar.Value)
	}
	if secondary.Sugar.Present() {
		t.Error("secondary mutated: sugar appeared")
	}
}

func TestAnalyzeBilingual(t *testing.T) {
	korean := "나트륨 160mg 당류 13g"
	english := "Sodium 999 mg, Sugars 15 g, Protein 5 g"
	merged := AnalyzeBilingual(korean, english)
	wantField(t, merged, Sodium, 160, "mg")
	wantField(t, merged, Sugar, 13, "g")
	// only the English pass saw protein
	wantField(t, merged, Protein, 5, "g")

	single := AnalyzeBilingual(korean, "  ")
	wantField(t, single, Sodium, 160, "mg")
	wantAbsent(t, single, Protein)
}

func TestAnalyzeSodiumDigitMerge(t *testing.T) {
	rec := Analyze("나트륨 1400mg7%")
	wantField(t, rec, Sodium, 140, "mg")
}

func TestAnalyzeSugarDigitMerge(t *testing.T) {
	rec := Analyze("당류 289")
	wantField(t, rec, Sugar, 28, "g")
}

func TestRecordJSONNulls(t *testing.T) {
	b, err := json.Marshal(Analyze("당류 13g"))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"sugar":{"value":13,"unit":"g"}`) {
		t.Errorf("sugar not serialized: %s", s)
	}
	if !strings.Contains(s, `"sodium":{"value":null,"unit":null}`) {
		t.Errorf("absent field not null: %s", s)
	}
	if !strings.Contains(s, `"allergens":null`) {
		t.Errorf("absent allergens not null: %s", s)
	}
}
