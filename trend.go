package main

// Trend aggregation over the ordered daily series. Everything here follows
// the same rule: a windowed value either comes from a complete window or it
// does not exist. No zero-filling, no extrapolation — callers get (value, ok)
// and must treat ok=false as "not enough data".

// rollingMean7 returns the trailing 7-point mean of values ending at index i.
// Undefined until a full window of 7 consecutive points exists.
func rollingMean7(values []float64, i int) (float64, bool) {
	if i < 6 || i >= len(values) {
		return 0, false
	}
	var sum float64
	for j := i - 6; j <= i; j++ {
		sum += values[j]
	}
	return sum / 7, true
}

// rollingMean7Opt is rollingMean7 over a series with gaps. The mean is
// defined only when all 7 trailing positions have a value — a single missing
// day inside the window makes the average undefined rather than biased.
func rollingMean7Opt(values []*float64, i int) (float64, bool) {
	if i < 6 || i >= len(values) {
		return 0, false
	}
	var sum float64
	for j := i - 6; j <= i; j++ {
		if values[j] == nil {
			return 0, false
		}
		sum += *values[j]
	}
	return sum / 7, true
}

// weeklyDelta is the difference between the latest 7-day mean and the 7-day
// mean ending 7 days earlier. Requires at least 14 points.
func weeklyDelta(values []float64) (float64, bool) {
	if len(values) < 14 {
		return 0, false
	}
	last, okLast := rollingMean7(values, len(values)-1)
	prev, okPrev := rollingMean7(values, len(values)-8)
	if !okLast || !okPrev {
		return 0, false
	}
	return last - prev, true
}

// lastN returns the trailing n records (all of them when fewer exist).
func lastN(records []dailyRecord, n int) []dailyRecord {
	if len(records) > n {
		return records[len(records)-n:]
	}
	return records
}

// morningWeights extracts the ordered morning-weight series from records.
func morningWeights(records []dailyRecord) []float64 {
	weights := make([]float64, len(records))
	for i, r := range records {
		weights[i] = r.MorningWeightLB
	}
	return weights
}
