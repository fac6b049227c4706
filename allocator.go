package main

import (
	"fmt"
	"math"
)

const (
	// stopRemainingKcal is the "close enough" threshold — once the unmet
	// delta is within this, walking further down the priority list would
	// churn ingredients for noise-level calories.
	stopRemainingKcal = 25

	// proteinGuardKcal protects protein-bearing ingredients: they only
	// participate when the unmet delta still exceeds this, so minor
	// adjustments never move the protein target.
	proteinGuardKcal = 150

	// minGramStep is the forced step when rounding collapses a gram
	// quantity to zero; countables force a single unit instead.
	minGramStep = 10
)

// quantityForKcal converts a kcal amount into a rounded ingredient quantity
// following the ingredient's declarative rounding policy: whole units for
// countables, RoundG grams otherwise (10 g when unset).
func quantityForKcal(info ingredientInfo, kcal int) int {
	qty := int(math.Round(float64(kcal) / info.KcalPerUnit))
	if info.Countable {
		return qty
	}
	step := info.RoundG
	if step <= 0 {
		step = minGramStep
	}
	return int(math.Round(float64(qty)/float64(step))) * step
}

// proposeAdjustment greedily converts a signed daily kcal delta into concrete
// ingredient changes, walking the baseline's priority order so the least
// disruptive ingredients absorb the change first. The walk is order-sensitive
// by design: re-prioritizing the list changes the plan.
//
// A priority entry with no ingredient policy is a configuration-integrity
// failure and aborts the whole allocation — silently skipping it would
// distort the allocation order.
func proposeAdjustment(kcalChange int, b *coachBaseline) ([]planChange, error) {
	for _, item := range b.AdjustPriority {
		if _, ok := b.Ingredients[item]; !ok {
			return nil, fmt.Errorf("unknown ingredient %q in adjust priority", item)
		}
	}

	plan := []planChange{}
	if kcalChange == 0 {
		return plan, nil
	}

	remaining := kcalChange
	for _, item := range b.AdjustPriority {
		if absInt(remaining) <= stopRemainingKcal {
			break
		}
		info := b.Ingredients[item]
		if info.Protein && absInt(remaining) <= proteinGuardKcal {
			continue
		}

		delta := quantityForKcal(info, remaining)
		if delta == 0 {
			// Rounding swallowed the whole change; force the minimal
			// step in the direction of the remaining delta.
			if info.Countable {
				delta = 1
			} else {
				delta = minGramStep
			}
			if remaining < 0 {
				delta = -delta
			}
		}

		achieved := int(math.Round(float64(delta) * info.KcalPerUnit))
		unit := "g"
		if info.Countable {
			unit = "unit"
		}
		plan = append(plan, planChange{Item: item, QtyDelta: delta, Unit: unit, AchievedKcal: achieved})
		remaining -= achieved
	}
	return plan, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
