package models

import (
	"time"
)

// Upload tracks one uploaded label image. The record survives OCR failure so
// the owner can review and retry instead of silently losing the photo.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string  `gorm:"size:255;not null"`
	StorePath   string  `gorm:"column:store_path;size:512"` // public relative path (e.g. public/labels/xxx.jpg)
	ProfileID   uint    `gorm:"index;not null"`
	Profile     Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ContentType string  `gorm:"size:128"`
	ScanID      *uint   `gorm:"index"` // FK to label_scans.id, nil until analysis succeeds
	// Failed marks uploads whose OCR/extraction did not produce a scan.
	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
