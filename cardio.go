package main

import (
	"fmt"
	"math"
	"strings"
)

// oatsCarbFraction is the carbohydrate fraction of oats by weight, used when
// the preferred fuel source is oats rather than a pure-carb powder.
const oatsCarbFraction = 0.67

// cardioFuelNote returns the fuel-guardrail advisory for one day's cardio
// minutes. Triggers only on a strict greater-than: a session exactly at the
// threshold produces no note, and absent cardio minutes never trigger.
//
// When the preferred source is oats, the target carb grams are converted to
// oat grams (rounded to 10 g) and the note mentions the direct dextrin
// equivalent as an alternative.
func cardioFuelNote(cardioMin *int, b *coachBaseline) (string, bool) {
	if cardioMin == nil {
		return "", false
	}
	cm := *cardioMin
	if cm <= b.CardioThresholdMin {
		return "", false
	}

	add := b.CardioAddCarbsG
	src := b.CardioPreferredSource
	if src == "oats_g" {
		oats := int(math.Round(float64(add)/oatsCarbFraction/10)) * 10
		return fmt.Sprintf("Cardio %dmin > %dmin: add ~%dg carbs: +%dg oats (or +%dg dextrin).",
			cm, b.CardioThresholdMin, add, oats, add), true
	}
	if src == "" {
		return fmt.Sprintf("Cardio %dmin > %dmin: add +%dg carbs.",
			cm, b.CardioThresholdMin, add), true
	}
	return fmt.Sprintf("Cardio %dmin > %dmin: add +%dg carbs: +%dg %s.",
		cm, b.CardioThresholdMin, add, add, strings.TrimSuffix(src, "_g")), true
}
