package models

import (
	"strings"
	"time"

	"labelscan/pkg/label"
)

// LabelScan stores one analyzed label image: the merged OCR text, the
// optional translated pass, and the extracted nutrition record flattened
// into nullable value/unit column pairs so absent fields stay NULL.
type LabelScan struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ProfileID uint    `gorm:"index;not null"`
	Profile   Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	SourcePath     string `gorm:"size:512"` // relative path of the uploaded image
	OCRText        string `gorm:"type:text"`
	TranslatedText string `gorm:"type:text"`

	CaloriesValue      *float64
	CaloriesUnit       *string `gorm:"size:16"`
	CarbohydratesValue *float64
	CarbohydratesUnit  *string `gorm:"size:16"`
	SugarValue         *float64
	SugarUnit          *string `gorm:"size:16"`
	ProteinValue       *float64
	ProteinUnit        *string `gorm:"size:16"`
	FatValue           *float64
	FatUnit            *string `gorm:"size:16"`
	SaturatedFatValue  *float64
	SaturatedFatUnit   *string `gorm:"size:16"`
	TransFatValue      *float64
	TransFatUnit       *string `gorm:"size:16"`
	CholesterolValue   *float64
	CholesterolUnit    *string `gorm:"size:16"`
	SodiumValue        *float64
	SodiumUnit         *string `gorm:"size:16"`

	ServingSize *string `gorm:"size:64"`
	// Allergens holds the canonical names comma-joined ("대두,우유").
	Allergens string `gorm:"size:512"`
}

func (s *LabelScan) fieldCols(id label.FieldID) (**float64, **string) {
	switch id {
	case label.Calories:
		return &s.CaloriesValue, &s.CaloriesUnit
	case label.Carbohydrates:
		return &s.CarbohydratesValue, &s.CarbohydratesUnit
	case label.Sugar:
		return &s.SugarValue, &s.SugarUnit
	case label.Protein:
		return &s.ProteinValue, &s.ProteinUnit
	case label.Fat:
		return &s.FatValue, &s.FatUnit
	case label.SaturatedFat:
		return &s.SaturatedFatValue, &s.SaturatedFatUnit
	case label.TransFat:
		return &s.TransFatValue, &s.TransFatUnit
	case label.Cholesterol:
		return &s.CholesterolValue, &s.CholesterolUnit
	case label.Sodium:
		return &s.SodiumValue, &s.SodiumUnit
	}
	return nil, nil
}

// SetRecord copies an extracted record into the scan's columns.
func (s *LabelScan) SetRecord(rec *label.Record) {
	if rec == nil {
		return
	}
	for _, id := range label.FieldIDs {
		vp, up := s.fieldCols(id)
		if vp == nil {
			continue
		}
		*vp, *up = nil, nil
		if f := rec.Get(id); f.Present() {
			v := *f.Value
			u := *f.Unit
			*vp = &v
			*up = &u
		}
	}
	s.ServingSize = nil
	if rec.ServingSize != nil {
		v := *rec.ServingSize
		s.ServingSize = &v
	}
	s.Allergens = strings.Join(rec.Allergens, ",")
}

// Record rebuilds the extraction result from the stored columns.
func (s *LabelScan) Record() *label.Record {
	rec := &label.Record{}
	for _, id := range label.FieldIDs {
		vp, up := s.fieldCols(id)
		if vp == nil || *vp == nil {
			continue
		}
		unit := ""
		if *up != nil {
			unit = **up
		}
		rec.Set(id, **vp, unit)
	}
	if s.ServingSize != nil {
		v := *s.ServingSize
		rec.ServingSize = &v
	}
	if s.Allergens != "" {
		rec.Allergens = strings.Split(s.Allergens, ",")
	}
	return rec
}

// AllergenList returns the stored allergens as a slice (nil when empty).
func (s *LabelScan) AllergenList() []string {
	if s.Allergens == "" {
		return nil
	}
	return strings.Split(s.Allergens, ",")
}
