package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// Report and dashboard assembly. The build functions are pure — ordered
// records plus an immutable baseline in, response structs out — so the whole
// pipeline is testable without a database and re-running it on unchanged
// input yields identical output.

// buildWeeklyReport assembles the weekly recommendation bundle. When the
// series is too short for a weekly delta, the trend-derived fields stay nil
// and the plan stays empty; the diagnosis still reports why.
func buildWeeklyReport(records []dailyRecord, b *coachBaseline) (weeklyReport, error) {
	rep := weeklyReport{
		BaselineCalories: b.Calories,
		BaselineProteinG: b.ProteinG,
		BaselineCarbsG:   b.CarbsG,
		BaselineFatG:     b.FatG,
		Plan:             []planChange{},
		CardioNotes:      []cardioAdvisory{},
		Diagnosis:        diagnose(records, defaultNoteClassifier),
	}

	if wd, ok := weeklyDelta(morningWeights(records)); ok {
		rep.WeeklyDeltaLB = &wd
		adj := suggestCalorieAdjustment(wd)
		rep.KcalAdjustment = &adj
		plan, err := proposeAdjustment(adj, b)
		if err != nil {
			return weeklyReport{}, err
		}
		rep.Plan = plan
	}

	if ratio, ok := leanGainRatio14d(records); ok {
		rep.LeanGainRatio14d = &ratio
		display := clampRatioForDisplay(ratio)
		rep.LeanGainRatioDisplay = &display
	}

	for _, r := range lastN(records, 7) {
		if note, ok := cardioFuelNote(r.CardioMin, b); ok {
			rep.CardioNotes = append(rep.CardioNotes, cardioAdvisory{Date: r.Date, Note: note})
		}
	}
	return rep, nil
}

// buildDashboard assembles the per-date rolling-metrics table. Activity rows
// are left-joined by date: a record day without tracker data gets a nil
// Activity, and tracker days without a record are dropped — the record
// series is the unit of analysis.
func buildDashboard(records []dailyRecord, activity []activityMetric, b *coachBaseline) dashboardResponse {
	weights := morningWeights(records)
	waists := make([]*float64, len(records))
	leans := make([]*float64, len(records))
	for i := range records {
		waists[i] = records[i].WaistIn
		if lm, ok := records[i].leanMassLB(); ok {
			leans[i] = &lm
		}
	}

	activityByDate := make(map[string]*activityMetric, len(activity))
	for i := range activity {
		activityByDate[activity[i].Date.Format("2006-01-02")] = &activity[i]
	}

	rows := make([]dashboardRow, len(records))
	for i := range records {
		r := &records[i]
		row := dashboardRow{
			Date:            r.Date,
			MorningWeightLB: r.MorningWeightLB,
			WaistIn:         r.WaistIn,
			LeanMassLB:      leans[i],
			CardioMin:       r.CardioMin,
			Steps:           r.Steps,
		}
		if avg, ok := rollingMean7(weights, i); ok {
			row.Weight7dAvg = &avg
		}
		if avg, ok := rollingMean7Opt(waists, i); ok {
			row.Waist7dAvg = &avg
		}
		if avg, ok := rollingMean7Opt(leans, i); ok {
			row.LeanMass7dAvg = &avg
		}
		if note, ok := cardioFuelNote(r.CardioMin, b); ok {
			row.CardioFuelNote = &note
		}
		row.Activity = activityByDate[r.Date.Format("2006-01-02")]
		rows[i] = row
	}

	resp := dashboardResponse{Rows: rows}
	if ratio, ok := leanGainRatio14d(records); ok {
		resp.LeanGainRatio14d = &ratio
	}
	return resp
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// loadRecordSeries fetches the user's full ordered record series. Every
// report/dashboard build reloads and recomputes from scratch.
func (h *Handler) loadRecordSeries(c *gin.Context, userID int) ([]dailyRecord, error) {
	return queryMany[dailyRecord](h.db, c,
		`SELECT * FROM daily_records WHERE user_id = @userID ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID})
}

// loadBaseline fetches the user's coach baseline.
func (h *Handler) loadBaseline(c *gin.Context, userID int) (coachBaseline, error) {
	return queryOne[coachBaseline](h.db, c,
		"SELECT * FROM coach_baselines WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// getWeeklyReport returns the weekly recommendation bundle.
// GET /api/coach/report.
func (h *Handler) getWeeklyReport(c *gin.Context) {
	userID := c.GetInt("user_id")

	records, err := h.loadRecordSeries(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch daily records")
		return
	}
	baseline, err := h.loadBaseline(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch baseline")
		return
	}

	report, err := buildWeeklyReport(records, &baseline)
	if err != nil {
		// Allocation aborts only on a priority entry with no ingredient
		// policy — a baseline configuration problem, not a server fault.
		log.Printf("[report] allocation aborted for user %d: %v", userID, err)
		apiError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c.JSON(http.StatusOK, report)
}

// getDashboard returns the rolling-metrics table with tracker data joined in.
// GET /api/coach/dashboard.
func (h *Handler) getDashboard(c *gin.Context) {
	userID := c.GetInt("user_id")

	records, err := h.loadRecordSeries(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch daily records")
		return
	}
	activity, err := queryMany[activityMetric](h.db, c,
		`SELECT * FROM activity_metrics WHERE user_id = @userID ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch activity metrics")
		return
	}
	baseline, err := h.loadBaseline(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch baseline")
		return
	}

	c.JSON(http.StatusOK, buildDashboard(records, activity, &baseline))
}

// getChecklist serves the locked daily template from the server config.
// GET /api/coach/checklist.
func (h *Handler) getChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checklist": h.cfg.Checklist})
}
