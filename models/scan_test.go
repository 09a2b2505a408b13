package models

import (
	"reflect"
	"testing"

	"labelscan/pkg/label"
)

func TestScanRecordRoundTrip(t *testing.T) {
	rec := label.Analyze("열량192kcal 탄수화물28g9% 당류13g13% 나트륨160mg8% 우유 함유")
	var scan LabelScan
	scan.SetRecord(rec)

	if scan.SodiumValue == nil || *scan.SodiumValue != 160 {
		t.Fatalf("sodium column = %v", scan.SodiumValue)
	}
	if scan.ProteinValue != nil {
		t.Error("absent field should stay nil")
	}
	if scan.Allergens != "우유" {
		t.Errorf("allergens column = %q", scan.Allergens)
	}

	back := scan.Record()
	if !reflect.DeepEqual(back, rec) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, rec)
	}
}

func TestScanSetRecordOverwrites(t *testing.T) {
	var scan LabelScan
	scan.SetRecord(label.Analyze("당류 13g"))
	scan.SetRecord(label.Analyze("나트륨 160mg"))
	if scan.SugarValue != nil {
		t.Error("stale sugar column survived a second SetRecord")
	}
	if scan.SodiumValue == nil || *scan.SodiumValue != 160 {
		t.Errorf("sodium column = %v", scan.SodiumValue)
	}
	if scan.Allergens != "" {
		t.Errorf("allergens column = %q", scan.Allergens)
	}
}

func TestProfileAlertList(t *testing.T) {
	p := Profile{AllergenAlerts: "우유, 대두,"}
	if got := p.AlertList(); !reflect.DeepEqual(got, []string{"우유", "대두"}) {
		t.Errorf("AlertList = %v", got)
	}
	empty := Profile{}
	if got := empty.AlertList(); got != nil {
		t.Errorf("AlertList on empty = %v", got)
	}
}
