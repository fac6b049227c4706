package main

import "math"

// Body-composition estimates from handheld BIA readings. Derived masses come
// from the morning weight and morning BF% only; evening readings are logged
// for reference but never feed a derived value.

// bfAverage is the all-or-nothing 3-reading average. Two of three readings
// is a discarded session, not a 2-point average — a partial mean from a
// noisy handheld device biases the series.
func bfAverage(r1, r2, r3 *float64) *float64 {
	if r1 == nil || r2 == nil || r3 == nil {
		return nil
	}
	avg := (*r1 + *r2 + *r3) / 3
	return &avg
}

// leanMassLB estimates fat-free mass: weight × (1 − BF%/100).
// Undefined without a morning BF% average.
func (r *dailyRecord) leanMassLB() (float64, bool) {
	if r.BFMorningPct == nil {
		return 0, false
	}
	return r.MorningWeightLB * (1 - *r.BFMorningPct/100), true
}

// fatMassLB estimates fat mass: weight × (BF%/100).
func (r *dailyRecord) fatMassLB() (float64, bool) {
	if r.BFMorningPct == nil {
		return 0, false
	}
	return r.MorningWeightLB * (*r.BFMorningPct / 100), true
}

// leanGainRatio14d estimates what fraction of the recent weight change
// appears to be lean mass: Δlean / Δweight over the most recent 14 records,
// using the first and last record that carries a defined lean mass.
//
// Undefined when fewer than 2 such records exist, or when |Δweight| < 0.1 lb
// — near-zero division would amplify BIA sensor noise into silly ratios.
// The returned value is the raw analytic ratio; it can be > 1 or negative.
// Clamping is presentation-only, see clampRatioForDisplay.
func leanGainRatio14d(records []dailyRecord) (float64, bool) {
	recent := lastN(records, 14)

	var first, last *dailyRecord
	for i := range recent {
		if _, ok := recent[i].leanMassLB(); !ok {
			continue
		}
		if first == nil {
			first = &recent[i]
		}
		last = &recent[i]
	}
	if first == nil || first == last {
		return 0, false
	}

	dw := last.MorningWeightLB - first.MorningWeightLB
	if math.Abs(dw) < 0.1 {
		return 0, false
	}
	lmFirst, _ := first.leanMassLB()
	lmLast, _ := last.leanMassLB()
	return (lmLast - lmFirst) / dw, true
}

// clampRatioForDisplay bounds a lean-gain ratio to [-1, 2] for rendering.
// Returns a copy — the stored analytic value is never overwritten, and the
// diagnosis cascade always works from the raw series.
func clampRatioForDisplay(ratio float64) float64 {
	return math.Max(-1.0, math.Min(2.0, ratio))
}
