package main

// suggestCalorieAdjustment maps the weekly weight delta (lb/week) to a daily
// calorie adjustment. The bands are half-open on purpose: 0.10 starts the
// +75 band, while 0.25 and 0.50 both belong to the hold band.
//
//	< 0.10         +100
//	[0.10, 0.25)    +75
//	[0.25, 0.50]      0
//	(0.50, 0.75]    -50
//	> 0.75         -100
func suggestCalorieAdjustment(weeklyDeltaLB float64) int {
	switch {
	case weeklyDeltaLB < 0.10:
		return +100
	case weeklyDeltaLB < 0.25:
		return +75
	case weeklyDeltaLB <= 0.50:
		return 0
	case weeklyDeltaLB <= 0.75:
		return -50
	default:
		return -100
	}
}
