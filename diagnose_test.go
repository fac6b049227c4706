package main

import "testing"

/* ─── Classifier tests ───────────────────────────────────────────────── */

// TestKeywordClassifier verifies case-insensitive substring matching and
// that unmatched notes don't count as negative.
func TestKeywordClassifier(t *testing.T) {
	cases := []struct {
		note string
		want bool
	}{
		{"felt FLAT on bench today", true},
		{"Tired all day", true},
		{"no progress on squats", true},
		{"stalled again", true},
		{"grip felt weak", true},
		{"strong session, PRs everywhere", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := defaultNoteClassifier.Negative(tc.note); got != tc.want {
			t.Errorf("Negative(%q) = %v, want %v", tc.note, got, tc.want)
		}
	}
}

/* ─── Signal collection tests ────────────────────────────────────────── */

// TestWindowChange_LastMinusFirstAvailable verifies the change uses the
// first and last non-missing values, not strict window endpoints.
func TestWindowChange_LastMinusFirstAvailable(t *testing.T) {
	records := makeFlatRecords(5, 200)
	records[1].WaistIn = fptr(34.0)
	records[3].WaistIn = fptr(34.5)

	change := windowChange(records, func(r *dailyRecord) *float64 { return r.WaistIn })
	if change == nil {
		t.Fatal("expected a change with 2 non-missing points")
	}
	if !almostEqual(*change, 0.5) {
		t.Errorf("waist change = %f, want 0.5", *change)
	}
}

// TestWindowChange_RequiresTwoPoints verifies a single non-missing value
// yields no signal.
func TestWindowChange_RequiresTwoPoints(t *testing.T) {
	records := makeFlatRecords(5, 200)
	records[2].WaistIn = fptr(34.0)
	if windowChange(records, func(r *dailyRecord) *float64 { return r.WaistIn }) != nil {
		t.Error("expected no change signal with a single point")
	}
}

/* ─── Cascade tests ──────────────────────────────────────────────────── */

// TestDiagnose_InsufficientHistory verifies fewer than 14 records short-
// circuits the cascade.
func TestDiagnose_InsufficientHistory(t *testing.T) {
	records := makeFlatRecords(13, 200)
	if got := diagnose(records, defaultNoteClassifier); got != verdictInsufficientHistory {
		t.Errorf("diagnosis = %q, want insufficient-history verdict", got)
	}
}

// TestDiagnose_AdherencePreemptsTrendRules verifies rule 2 wins even when
// the trend data would also match a later rule: mean adherence 0.85 with a
// fast gain and rising waist still reports the adherence issue.
func TestDiagnose_AdherencePreemptsTrendRules(t *testing.T) {
	records := makeTrendRecords(200, 1.0) // delta > 0.75
	records[0].WaistIn = fptr(34.0)
	records[13].WaistIn = fptr(34.5) // waist change > 0.25
	for i := range records {
		records[i].Adherence = 0.85
	}

	if got := diagnose(records, defaultNoteClassifier); got != verdictAdherence {
		t.Errorf("diagnosis = %q, want adherence verdict", got)
	}
}

// TestDiagnose_DeloadBranches verifies the deload special branch: a flat
// week is acceptable, anything else defers conclusions.
func TestDiagnose_DeloadBranches(t *testing.T) {
	flat := makeTrendRecords(200, 0.0)
	flat[10].DeloadWeek = bptr(true)
	if got := diagnose(flat, defaultNoteClassifier); got != verdictDeloadHold {
		t.Errorf("flat deload diagnosis = %q, want hold verdict", got)
	}

	moving := makeTrendRecords(200, 0.6)
	moving[10].DeloadWeek = bptr(true)
	if got := diagnose(moving, defaultNoteClassifier); got != verdictDeloadReassess {
		t.Errorf("moving deload diagnosis = %q, want reassess verdict", got)
	}
}

// TestDiagnose_Overshoot verifies fast gain plus a rising waist reads as a
// diet overshoot.
func TestDiagnose_Overshoot(t *testing.T) {
	records := makeTrendRecords(200, 1.0)
	records[0].WaistIn = fptr(34.0)
	records[13].WaistIn = fptr(34.4)

	if got := diagnose(records, defaultNoteClassifier); got != verdictOvershoot {
		t.Errorf("diagnosis = %q, want overshoot verdict", got)
	}
}

// TestDiagnose_Overshoot_SkippedWithoutWaistSignal verifies the overshoot
// rule is skipped (not falsely triggered) when fewer than 2 waist points
// exist in the window.
func TestDiagnose_Overshoot_SkippedWithoutWaistSignal(t *testing.T) {
	records := makeTrendRecords(200, 1.0)
	records[13].WaistIn = fptr(40.0) // single point — no signal

	if got := diagnose(records, defaultNoteClassifier); got == verdictOvershoot {
		t.Error("overshoot rule fired without a waist-change signal")
	}
}

// TestDiagnose_Undershoot verifies a flat trend plus repeated negative
// performance notes reads as an undershoot. One negative note is not enough.
func TestDiagnose_Undershoot(t *testing.T) {
	records := makeTrendRecords(200, 0.0)
	records[8].PerformanceNote = sptr("bench felt flat")
	records[11].PerformanceNote = sptr("tired, cut the session short")

	if got := diagnose(records, defaultNoteClassifier); got != verdictUndershoot {
		t.Errorf("diagnosis = %q, want undershoot verdict", got)
	}

	single := makeTrendRecords(200, 0.0)
	single[8].PerformanceNote = sptr("bench felt flat")
	if got := diagnose(single, defaultNoteClassifier); got == verdictUndershoot {
		t.Error("undershoot rule fired on a single negative note")
	}
}

// TestDiagnose_DietAdequate verifies an on-target trend with negative notes
// points at training/sleep rather than diet.
func TestDiagnose_DietAdequate(t *testing.T) {
	records := makeTrendRecords(200, 0.4)
	records[8].PerformanceNote = sptr("squats stalled")
	records[11].PerformanceNote = sptr("felt weak today")

	if got := diagnose(records, defaultNoteClassifier); got != verdictDietAdequate {
		t.Errorf("diagnosis = %q, want diet-adequate verdict", got)
	}
}

// TestDiagnose_LeanMassNoiseHint verifies weight rising while estimated lean
// mass falls produces the BIA-noise hint.
func TestDiagnose_LeanMassNoiseHint(t *testing.T) {
	records := makeTrendRecords(200, 0.4)
	// Lean mass falls: 160 → 158.5 while weight rises.
	records[0].BFMorningPct = fptr(20.0)  // 200 lb → lean 160
	records[13].BFMorningPct = fptr(20.9) // 200.4 lb → lean ~158.5

	if got := diagnose(records, defaultNoteClassifier); got != verdictLeanMassNoise {
		t.Errorf("diagnosis = %q, want lean-mass-noise verdict", got)
	}
}

// TestDiagnose_NoRedFlags verifies a clean on-target window falls through
// the whole cascade.
func TestDiagnose_NoRedFlags(t *testing.T) {
	records := makeTrendRecords(200, 0.4)
	if got := diagnose(records, defaultNoteClassifier); got != verdictNoRedFlags {
		t.Errorf("diagnosis = %q, want no-red-flags verdict", got)
	}
}
