package label

import "testing"

func TestSanitizeDigitMergeRepair(t *testing.T) {
	cases := []struct {
		id   FieldID
		in   float64
		want float64
	}{
		// "28g 9%" read as 289
		{Sugar, 289, 28},
		{Carbohydrates, 289, 28},
		// "45g 6%" read as 456
		{Fat, 456, 45},
		// sodium over 1000: leading three digits
		{Sodium, 1400, 140},
		{Sodium, 1406, 140},
		{Sodium, 16008, 160},
		// in-range values are untouched
		{Sugar, 28, 28},
		{Sodium, 950, 950},
		{Calories, 192, 192},
	}
	for _, c := range cases {
		got, ok := SanitizeField(c.id, c.in)
		if !ok {
			t.Errorf("SanitizeField(%s, %v): unexpectedly discarded", c.id, c.in)
			continue
		}
		if got != c.want {
			t.Errorf("SanitizeField(%s, %v) = %v, want %v", c.id, c.in, got, c.want)
		}
	}
}

func TestSanitizeDiscardsImplausible(t *testing.T) {
	cases := []struct {
		id FieldID
		in float64
	}{
		{Calories, 2000},
		// trailing 0 is not a merge suspect; 2890 stays and busts the ceiling
		{Carbohydrates, 2890},
		{Sugar, 350},
		{Protein, 480},
		{TransFat, 95},
		{Cholesterol, 78000},
	}
	for _, c := range cases {
		if got, ok := SanitizeField(c.id, c.in); ok {
			t.Errorf("SanitizeField(%s, %v) = %v, want discard", c.id, c.in, got)
		}
	}
}

// Whatever goes in, a kept value never exceeds the field's ceiling.
func TestSanitizeNeverExceedsCeiling(t *testing.T) {
	probes := []float64{0, 0.5, 13, 49, 50, 99, 100, 149, 289, 456, 999, 1000, 1400, 1500, 2896, 9999, 123456}
	for id, lim := range DefaultLimits {
		for _, v := range probes {
			got, ok := SanitizeField(id, v)
			if ok && got > lim.Ceiling {
				t.Errorf("SanitizeField(%s, %v) = %v exceeds ceiling %v", id, v, got, lim.Ceiling)
			}
		}
	}
}
