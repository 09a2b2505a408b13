package label

import (
	"log"
	"math"
	"strconv"
)

// Limits bounds the plausible readings for one field. Ceiling is the hard
// maximum a single serving can show; anything above it after repair is
// discarded outright, never clamped. MergeAt is the single-reading ceiling
// above which a value is suspected of being a digit-merge artifact (a percent
// figure fused onto the value); zero disables the repair.
//
// The numbers are tuned empirically against observed Tesseract misreads of
// Korean labels, not derived from a model. Adjust here, not in the code.
type Limits struct {
	Ceiling float64
	MergeAt float64
}

// DefaultLimits holds the per-field bounds used by Analyze.
var DefaultLimits = map[FieldID]Limits{
	Calories:      {Ceiling: 1500, MergeAt: 1000},
	Carbohydrates: {Ceiling: 150, MergeAt: 100},
	Sugar:         {Ceiling: 100, MergeAt: 50},
	Protein:       {Ceiling: 100, MergeAt: 50},
	Fat:           {Ceiling: 100, MergeAt: 50},
	SaturatedFat:  {Ceiling: 50, MergeAt: 50},
	TransFat:      {Ceiling: 20, MergeAt: 20},
	Cholesterol:   {Ceiling: 1000, MergeAt: 1000},
	Sodium:        {Ceiling: 5000, MergeAt: 1000},
}

// MergeSuspectDigits are trailing digits that commonly come from a fused
// percent figure ("28g 9%" read as "289").
var MergeSuspectDigits = map[byte]bool{'6': true, '8': true, '9': true}

// Debug enables diagnostic logging of silent corrections.
var Debug bool

func debugf(format string, args ...any) {
	if Debug {
		log.Printf(format, args...)
	}
}

// SanitizeField repairs digit-merge artifacts and applies the field's hard
// plausibility range. The second return is false when the value had to be
// discarded.
func SanitizeField(id FieldID, v float64) (float64, bool) {
	lim, ok := DefaultLimits[id]
	if !ok {
		return v, true
	}
	if repaired := repairDigitMerge(id, v, lim); repaired != v {
		debugf("label: %s digit-merge repair %v -> %v", id, v, repaired)
		v = repaired
	}
	if v < 0 || v > lim.Ceiling {
		debugf("label: %s value %v outside plausible range, discarded", id, v)
		return 0, false
	}
	return v, true
}

func repairDigitMerge(id FieldID, v float64, lim Limits) float64 {
	if lim.MergeAt <= 0 || v <= lim.MergeAt || v != math.Trunc(v) {
		return v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Sodium readings over 1000 are overwhelmingly a fused percent digit;
	// the leading three digits are the true milligram value.
	if id == Sodium && v > 1000 && len(s) >= 3 {
		if lead, err := strconv.ParseFloat(s[:3], 64); err == nil && lead >= 50 && lead <= 999 {
			return lead
		}
	}
	if len(s) >= 2 && MergeSuspectDigits[s[len(s)-1]] {
		if short, err := strconv.ParseFloat(s[:len(s)-1], 64); err == nil && short <= lim.MergeAt {
			return short
		}
	}
	return v
}
