package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// dailyRecord maps to daily_records — one row per (user_id, date). Optional
// measurements use pointers so pgx can scan NULLs and JSON omits them
// naturally; "no reading" must stay distinguishable from zero.
type dailyRecord struct {
	ID              int      `json:"id" db:"id"`
	UserID          int      `json:"user_id" db:"user_id"`
	Date            DateOnly `json:"date" db:"date"`
	MorningWeightLB float64  `json:"morning_weight_lb" db:"morning_weight_lb"`
	EveningWeightLB *float64 `json:"evening_weight_lb" db:"evening_weight_lb"`
	WaistIn         *float64 `json:"waist_in" db:"waist_in"`

	// Handheld BIA readings. The _pct averages are computed server-side from
	// the three raw readings and are never a partial average.
	BFMorningR1  *float64 `json:"bf_morning_r1" db:"bf_morning_r1"`
	BFMorningR2  *float64 `json:"bf_morning_r2" db:"bf_morning_r2"`
	BFMorningR3  *float64 `json:"bf_morning_r3" db:"bf_morning_r3"`
	BFMorningPct *float64 `json:"bf_morning_pct" db:"bf_morning_pct"`
	BFEveningR1  *float64 `json:"bf_evening_r1" db:"bf_evening_r1"`
	BFEveningR2  *float64 `json:"bf_evening_r2" db:"bf_evening_r2"`
	BFEveningR3  *float64 `json:"bf_evening_r3" db:"bf_evening_r3"`
	BFEveningPct *float64 `json:"bf_evening_pct" db:"bf_evening_pct"`

	CardioMin       *int    `json:"cardio_min" db:"cardio_min"`
	Steps           *int    `json:"steps" db:"steps"`
	LiftDone        *bool   `json:"lift_done" db:"lift_done"`
	DeloadWeek      *bool   `json:"deload_week" db:"deload_week"`
	Adherence       float64 `json:"adherence" db:"adherence"`
	PerformanceNote *string `json:"performance_note" db:"performance_note"`

	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// activityMetric maps to activity_metrics — one row per (user_id, date) from
// a wearable-tracker CSV export. Every metric is nullable because export
// report types carry different column sets.
type activityMetric struct {
	ID               int      `json:"id" db:"id"`
	UserID           int      `json:"user_id" db:"user_id"`
	Date             DateOnly `json:"date" db:"date"`
	Steps            *int     `json:"steps" db:"steps"`
	CaloriesBurned   *float64 `json:"calories_burned" db:"calories_burned"`
	MinutesAsleep    *int     `json:"minutes_asleep" db:"minutes_asleep"`
	SleepScore       *int     `json:"sleep_score" db:"sleep_score"`
	VeryActiveMin    *int     `json:"very_active_min" db:"very_active_min"`
	FairlyActiveMin  *int     `json:"fairly_active_min" db:"fairly_active_min"`
	LightlyActiveMin *int     `json:"lightly_active_min" db:"lightly_active_min"`
	SedentaryMin     *int     `json:"sedentary_min" db:"sedentary_min"`
	Distance         *float64 `json:"distance" db:"distance"`
}

// ingredientInfo is the per-ingredient allocation policy: calorie density
// plus the declarative rounding rule. Countable items (eggs, bananas,
// yogurt cups) round to whole units; gram items round to RoundG grams.
// Protein marks ingredients the allocator protects from small adjustments.
type ingredientInfo struct {
	KcalPerUnit float64 `json:"kcal_per_unit" yaml:"kcal_per_unit"`
	Countable   bool    `json:"countable,omitempty" yaml:"countable,omitempty"`
	RoundG      int     `json:"round_g,omitempty" yaml:"round_g,omitempty"`
	Protein     bool    `json:"protein,omitempty" yaml:"protein,omitempty"`
}

// coachBaseline maps to coach_baselines — the locked plan a computation run
// adjusts against. Items and ingredients are JSONB columns; adjust_priority
// is a text[] naming which ingredients to change first (least disruptive
// first). The engine treats a baseline as immutable input.
type coachBaseline struct {
	UserID   int     `json:"user_id" db:"user_id"`
	Calories float64 `json:"calories" db:"calories"`
	ProteinG float64 `json:"protein_g" db:"protein_g"`
	CarbsG   float64 `json:"carbs_g" db:"carbs_g"`
	FatG     float64 `json:"fat_g" db:"fat_g"`

	ItemsG         map[string]float64        `json:"items_g" db:"items_g"`
	Ingredients    map[string]ingredientInfo `json:"ingredients" db:"ingredients"`
	AdjustPriority []string                  `json:"adjust_priority" db:"adjust_priority"`

	CardioThresholdMin    int    `json:"cardio_threshold_min" db:"cardio_threshold_min"`
	CardioAddCarbsG       int    `json:"cardio_add_carbs_g" db:"cardio_add_carbs_g"`
	CardioPreferredSource string `json:"cardio_preferred_source" db:"cardio_preferred_source"`
}

/* ─── Request types ──────────────────────────────────────────────────── */

// upsertDailyRecordRequest is the request body for POST /api/daily-records.
// BF% is never accepted directly — only the three raw readings, from which
// the server computes the all-or-nothing average.
type upsertDailyRecordRequest struct {
	Date            string   `json:"date"`
	MorningWeightLB float64  `json:"morning_weight_lb"`
	EveningWeightLB *float64 `json:"evening_weight_lb"`
	WaistIn         *float64 `json:"waist_in"`

	BFMorningR1 *float64 `json:"bf_morning_r1"`
	BFMorningR2 *float64 `json:"bf_morning_r2"`
	BFMorningR3 *float64 `json:"bf_morning_r3"`
	BFEveningR1 *float64 `json:"bf_evening_r1"`
	BFEveningR2 *float64 `json:"bf_evening_r2"`
	BFEveningR3 *float64 `json:"bf_evening_r3"`

	CardioMin       *int     `json:"cardio_min"`
	Steps           *int     `json:"steps"`
	LiftDone        *bool    `json:"lift_done"`
	DeloadWeek      *bool    `json:"deload_week"`
	Adherence       *float64 `json:"adherence"` // defaults to 1.0 when omitted
	PerformanceNote *string  `json:"performance_note"`
}

// patchBaselineRequest is the request body for PATCH /api/coach/baseline.
// All fields are pointers or nil-able — only provided fields get written.
type patchBaselineRequest struct {
	Calories *float64 `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`

	ItemsG         map[string]float64        `json:"items_g"`
	Ingredients    map[string]ingredientInfo `json:"ingredients"`
	AdjustPriority []string                  `json:"adjust_priority"`

	CardioThresholdMin    *int    `json:"cardio_threshold_min"`
	CardioAddCarbsG       *int    `json:"cardio_add_carbs_g"`
	CardioPreferredSource *string `json:"cardio_preferred_source"`
}

/* ─── Response types ─────────────────────────────────────────────────── */

// planChange is one ingredient adjustment in the weekly recommendation:
// change Item by QtyDelta (grams or whole units), worth AchievedKcal/day.
type planChange struct {
	Item         string `json:"item"`
	QtyDelta     int    `json:"qty_delta"`
	Unit         string `json:"unit"`
	AchievedKcal int    `json:"achieved_kcal"`
}

// cardioAdvisory pairs a triggered cardio-fuel note with the day it fired.
type cardioAdvisory struct {
	Date DateOnly `json:"date"`
	Note string   `json:"note"`
}

// weeklyReport is the response for GET /api/coach/report. Windowed values
// that cannot be computed yet are nil pointers and omitted from JSON —
// absent, not zero.
type weeklyReport struct {
	BaselineCalories float64 `json:"baseline_calories"`
	BaselineProteinG float64 `json:"baseline_protein_g"`
	BaselineCarbsG   float64 `json:"baseline_carbs_g"`
	BaselineFatG     float64 `json:"baseline_fat_g"`

	WeeklyDeltaLB        *float64 `json:"weekly_delta_lb,omitempty"`
	LeanGainRatio14d     *float64 `json:"lean_gain_ratio_14d,omitempty"`
	LeanGainRatioDisplay *float64 `json:"lean_gain_ratio_display,omitempty"`

	KcalAdjustment *int             `json:"kcal_adjustment,omitempty"`
	Plan           []planChange     `json:"plan"`
	Diagnosis      string           `json:"diagnosis"`
	CardioNotes    []cardioAdvisory `json:"cardio_notes"`
}

// dashboardRow is one date's entry in GET /api/coach/dashboard. Rolling
// averages are nil until a full 7-day trailing window exists. Activity is
// the left-joined tracker row for the date, nil when the tracker has no
// data for that day.
type dashboardRow struct {
	Date            DateOnly `json:"date"`
	MorningWeightLB float64  `json:"morning_weight_lb"`
	Weight7dAvg     *float64 `json:"weight_7d_avg,omitempty"`
	WaistIn         *float64 `json:"waist_in,omitempty"`
	Waist7dAvg      *float64 `json:"waist_7d_avg,omitempty"`
	LeanMassLB      *float64 `json:"lean_mass_lb,omitempty"`
	LeanMass7dAvg   *float64 `json:"lean_mass_7d_avg,omitempty"`
	CardioMin       *int     `json:"cardio_min,omitempty"`
	Steps           *int     `json:"steps,omitempty"`
	CardioFuelNote  *string  `json:"cardio_fuel_note,omitempty"`

	Activity *activityMetric `json:"activity,omitempty"`
}

// dashboardResponse is the full rolling-metrics table plus the 14-day
// lean-gain ratio. The ratio here is the raw analytic value — display
// clamping happens only in the weekly report.
type dashboardResponse struct {
	Rows             []dashboardRow `json:"rows"`
	LeanGainRatio14d *float64       `json:"lean_gain_ratio_14d,omitempty"`
}

// checklistEntry is one line of the locked daily template served by
// GET /api/coach/checklist.
type checklistEntry struct {
	Time   string `json:"time" yaml:"time"`
	Label  string `json:"label" yaml:"label"`
	Detail string `json:"detail" yaml:"detail"`
}
