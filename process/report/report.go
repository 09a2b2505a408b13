package report

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"labelscan/models"
	"labelscan/pkg/label"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// RunReport prints a month-bounded extraction summary for username (month in
// YYYY-MM): how many scans were stored, how often each field was recovered,
// and which allergens came up. Optionally lists matching label_scans rows.
func RunReport(username, month string, list bool) {
	gdb := mustDBFromEnv()

	var user models.User
	if err := gdb.Where("username = ?", username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}
	var profile models.Profile
	if err := gdb.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		log.Fatalf("profile not found: %v", err)
	}

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var scans []models.LabelScan
	if err := gdb.Where("profile_id = ? AND created_at >= ? AND created_at < ?", profile.ID, start, end).Order("id").Find(&scans).Error; err != nil {
		log.Fatalf("query failed: %v", err)
	}

	fieldHits := map[label.FieldID]int{}
	allergenHits := map[string]int{}
	for i := range scans {
		rec := scans[i].Record()
		for _, id := range label.FieldIDs {
			if rec.Get(id).Present() {
				fieldHits[id]++
			}
		}
		for _, a := range rec.Allergens {
			allergenHits[a]++
		}
	}

	fmt.Printf("Report for user=%s month=%s (UTC):\n", user.Username, month)
	fmt.Printf("  scans=%d\n", len(scans))
	for _, id := range label.FieldIDs {
		fmt.Printf("  %-15s %d/%d\n", string(id), fieldHits[id], len(scans))
	}
	if len(allergenHits) > 0 {
		names := make([]string, 0, len(allergenHits))
		for a := range allergenHits {
			names = append(names, a)
		}
		sort.Strings(names)
		var parts []string
		for _, a := range names {
			parts = append(parts, fmt.Sprintf("%s=%d", a, allergenHits[a]))
		}
		fmt.Printf("  allergens: %s\n", strings.Join(parts, " "))
	}

	if list {
		for i := range scans {
			s := &scans[i]
			fmt.Printf("%d|%s|%s|%s\n", s.ID, s.SourcePath, s.Allergens, s.CreatedAt.Format(time.RFC3339))
		}
	}
}
