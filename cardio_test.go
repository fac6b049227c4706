package main

import (
	"strings"
	"testing"
)

// TestCardioFuelNote_StrictThreshold verifies the guardrail triggers only on
// a strict greater-than: 46 min fires, 45 min (exactly at threshold) does
// not, and absent cardio minutes never do.
func TestCardioFuelNote_StrictThreshold(t *testing.T) {
	b := testBaseline()

	if _, ok := cardioFuelNote(nil, b); ok {
		t.Error("expected no advisory without cardio minutes")
	}
	if _, ok := cardioFuelNote(iptr(45), b); ok {
		t.Error("expected no advisory at exactly the threshold")
	}
	note, ok := cardioFuelNote(iptr(46), b)
	if !ok {
		t.Fatal("expected an advisory at 46 minutes")
	}
	if !strings.Contains(note, "+25g dextrin") {
		t.Errorf("note should name the carb addition via dextrin, got: %s", note)
	}
}

// TestCardioFuelNote_OatsConversion verifies the indirect-source path:
// 25 g carbs via oats converts at 0.67 → 37.3 g, rounded to 40 g, with the
// direct dextrin equivalent mentioned as an alternative.
func TestCardioFuelNote_OatsConversion(t *testing.T) {
	b := testBaseline()
	b.CardioPreferredSource = "oats_g"

	note, ok := cardioFuelNote(iptr(60), b)
	if !ok {
		t.Fatal("expected an advisory at 60 minutes")
	}
	if !strings.Contains(note, "+40g oats") {
		t.Errorf("note should suggest +40g oats, got: %s", note)
	}
	if !strings.Contains(note, "+25g dextrin") {
		t.Errorf("note should offer the dextrin alternative, got: %s", note)
	}
}

// TestCardioFuelNote_UsesBaselineParameters verifies the threshold and carb
// amount come from the baseline, not constants.
func TestCardioFuelNote_UsesBaselineParameters(t *testing.T) {
	b := testBaseline()
	b.CardioThresholdMin = 30
	b.CardioAddCarbsG = 40

	if _, ok := cardioFuelNote(iptr(30), b); ok {
		t.Error("expected no advisory at the adjusted threshold")
	}
	note, ok := cardioFuelNote(iptr(31), b)
	if !ok {
		t.Fatal("expected an advisory past the adjusted threshold")
	}
	if !strings.Contains(note, "+40g carbs") {
		t.Errorf("note should reflect the adjusted carb amount, got: %s", note)
	}
}

// TestCardioFuelNote_NoPreferredSource verifies an unset fuel source falls
// back to a generic carbs note.
func TestCardioFuelNote_NoPreferredSource(t *testing.T) {
	b := testBaseline()
	b.CardioPreferredSource = ""

	note, ok := cardioFuelNote(iptr(60), b)
	if !ok {
		t.Fatal("expected an advisory at 60 minutes")
	}
	if note != "Cardio 60min > 45min: add +25g carbs." {
		t.Errorf("unexpected generic note: %s", note)
	}
}
