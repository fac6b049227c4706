package main

import (
	"strings"
	"testing"
)

// TestParseActivityCSV_AliasedHeaders verifies the alias-driven header
// matching on a Fitbit-style activity export, including the "12,345"
// thousands separator in step counts.
func TestParseActivityCSV_AliasedHeaders(t *testing.T) {
	csvData := strings.Join([]string{
		"Activity Date,Step Count,Calories Burned,Minutes Very Active,Minutes Sedentary,Distance (km)",
		`2026-08-01,"12,345","2,850",42,600,8.4`,
		"2026-08-02,9800,2620,15,720,6.1",
	}, "\n")

	rows, err := parseActivityCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("parseActivityCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	first := rows[0]
	if first.Date != "2026-08-01" {
		t.Errorf("date = %q, want 2026-08-01", first.Date)
	}
	if first.Steps == nil || *first.Steps != 12345 {
		t.Errorf("steps = %v, want 12345", first.Steps)
	}
	if first.CaloriesBurned == nil || *first.CaloriesBurned != 2850 {
		t.Errorf("calories = %v, want 2850", first.CaloriesBurned)
	}
	if first.VeryActiveMin == nil || *first.VeryActiveMin != 42 {
		t.Errorf("very active = %v, want 42", first.VeryActiveMin)
	}
	if first.SedentaryMin == nil || *first.SedentaryMin != 600 {
		t.Errorf("sedentary = %v, want 600", first.SedentaryMin)
	}
	if first.Distance == nil || *first.Distance != 8.4 {
		t.Errorf("distance = %v, want 8.4", first.Distance)
	}
	// Columns the export doesn't carry stay nil.
	if first.MinutesAsleep != nil || first.SleepScore != nil {
		t.Error("sleep columns should be nil for an activity export")
	}
}

// TestParseActivityCSV_SleepExport verifies a sleep-style export with its
// own date alias and US-style dates parses into the sleep columns.
func TestParseActivityCSV_SleepExport(t *testing.T) {
	csvData := strings.Join([]string{
		"Sleep Date,Minutes Asleep,Sleep Score",
		"8/1/2026,412,81",
	}, "\n")

	rows, err := parseActivityCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("parseActivityCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Date != "2026-08-01" {
		t.Errorf("date = %q, want 2026-08-01", rows[0].Date)
	}
	if rows[0].MinutesAsleep == nil || *rows[0].MinutesAsleep != 412 {
		t.Errorf("minutes asleep = %v, want 412", rows[0].MinutesAsleep)
	}
	if rows[0].SleepScore == nil || *rows[0].SleepScore != 81 {
		t.Errorf("sleep score = %v, want 81", rows[0].SleepScore)
	}
}

// TestParseActivityCSV_MissingDateColumn verifies the one hard error: no
// recognizable date column.
func TestParseActivityCSV_MissingDateColumn(t *testing.T) {
	csvData := "Steps,Calories\n1000,2000\n"
	if _, err := parseActivityCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("expected an error for a CSV without a date column")
	}
}

// TestParseActivityCSV_SkipsBadRows verifies unparseable dates skip the row
// and empty cells stay nil rather than becoming zero.
func TestParseActivityCSV_SkipsBadRows(t *testing.T) {
	csvData := strings.Join([]string{
		"Date,Steps,Calories Burned",
		"2026-08-01,10000,2700",
		"not a date,9000,2600",
		"2026-08-03,,2500",
	}, "\n")

	rows, err := parseActivityCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("parseActivityCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (bad-date row skipped)", len(rows))
	}
	if rows[1].Date != "2026-08-03" {
		t.Errorf("row 1 date = %q, want 2026-08-03", rows[1].Date)
	}
	if rows[1].Steps != nil {
		t.Errorf("row 1 steps = %v, want nil for an empty cell", rows[1].Steps)
	}
	if rows[1].CaloriesBurned == nil || *rows[1].CaloriesBurned != 2500 {
		t.Errorf("row 1 calories = %v, want 2500", rows[1].CaloriesBurned)
	}
}

// TestNormalizeExportDate covers the supported export layouts.
func TestNormalizeExportDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-08-01", "2026-08-01", true},
		{"2026-08-01 00:00:00", "2026-08-01", true},
		{"8/1/2026", "2026-08-01", true},
		{"08/01/2026", "2026-08-01", true},
		{" 2026-08-01 ", "2026-08-01", true},
		{"August 1, 2026", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := normalizeExportDate(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeExportDate(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
