package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getDailyRecords returns the user's records within [start, end], ordered by
// date. GET /api/daily-records?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params
// required. Returns an empty array (not null) for an empty range.
func (h *Handler) getDailyRecords(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	records, err := queryMany[dailyRecord](h.db, c,
		`SELECT * FROM daily_records
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch daily records")
		return
	}
	if records == nil {
		records = []dailyRecord{}
	}

	c.JSON(http.StatusOK, records)
}

// upsertDailyRecord creates or replaces the record for a date.
// POST /api/daily-records. The UNIQUE(user_id, date) constraint means
// re-logging a day replaces it in place. BF% averages are computed here,
// all-or-nothing over the three raw readings — a session with fewer than 3
// readings stores NULL, never a partial average.
func (h *Handler) upsertDailyRecord(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body upsertDailyRecordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.MorningWeightLB <= 0 || body.MorningWeightLB > 9999.9 {
		apiError(c, http.StatusBadRequest, "morning_weight_lb must be between 0 and 9999.9")
		return
	}
	adherence := 1.0
	if body.Adherence != nil {
		adherence = *body.Adherence
	}
	if adherence < 0 || adherence > 1 {
		apiError(c, http.StatusBadRequest, "adherence must be between 0 and 1")
		return
	}

	bfMorning := bfAverage(body.BFMorningR1, body.BFMorningR2, body.BFMorningR3)
	bfEvening := bfAverage(body.BFEveningR1, body.BFEveningR2, body.BFEveningR3)

	record, err := queryOne[dailyRecord](h.db, c,
		`INSERT INTO daily_records (
			user_id, date, morning_weight_lb, evening_weight_lb, waist_in,
			bf_morning_r1, bf_morning_r2, bf_morning_r3, bf_morning_pct,
			bf_evening_r1, bf_evening_r2, bf_evening_r3, bf_evening_pct,
			cardio_min, steps, lift_done, deload_week, adherence, performance_note)
		 VALUES (
			@userID, @date, @morningWeight, @eveningWeight, @waist,
			@bfM1, @bfM2, @bfM3, @bfMorningPct,
			@bfE1, @bfE2, @bfE3, @bfEveningPct,
			@cardioMin, @steps, @liftDone, @deloadWeek, @adherence, @performanceNote)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			morning_weight_lb = EXCLUDED.morning_weight_lb,
			evening_weight_lb = EXCLUDED.evening_weight_lb,
			waist_in          = EXCLUDED.waist_in,
			bf_morning_r1     = EXCLUDED.bf_morning_r1,
			bf_morning_r2     = EXCLUDED.bf_morning_r2,
			bf_morning_r3     = EXCLUDED.bf_morning_r3,
			bf_morning_pct    = EXCLUDED.bf_morning_pct,
			bf_evening_r1     = EXCLUDED.bf_evening_r1,
			bf_evening_r2     = EXCLUDED.bf_evening_r2,
			bf_evening_r3     = EXCLUDED.bf_evening_r3,
			bf_evening_pct    = EXCLUDED.bf_evening_pct,
			cardio_min        = EXCLUDED.cardio_min,
			steps             = EXCLUDED.steps,
			lift_done         = EXCLUDED.lift_done,
			deload_week       = EXCLUDED.deload_week,
			adherence         = EXCLUDED.adherence,
			performance_note  = EXCLUDED.performance_note,
			updated_at        = now()
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date,
			"morningWeight": body.MorningWeightLB, "eveningWeight": body.EveningWeightLB,
			"waist": body.WaistIn,
			"bfM1":  body.BFMorningR1, "bfM2": body.BFMorningR2, "bfM3": body.BFMorningR3,
			"bfMorningPct": bfMorning,
			"bfE1":         body.BFEveningR1, "bfE2": body.BFEveningR2, "bfE3": body.BFEveningR3,
			"bfEveningPct": bfEvening,
			"cardioMin":    body.CardioMin, "steps": body.Steps,
			"liftDone": body.LiftDone, "deloadWeek": body.DeloadWeek,
			"adherence": adherence, "performanceNote": body.PerformanceNote,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert daily record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// deleteDailyRecord removes the record for a date. Returns 204 on success,
// 404 if the user has no record for that date.
// DELETE /api/daily-records/:date.
func (h *Handler) deleteDailyRecord(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.Param("date")

	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	result, err := h.db.Exec(c,
		"DELETE FROM daily_records WHERE user_id = @userID AND date = @date",
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete daily record")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "daily record not found")
		return
	}

	c.Status(http.StatusNoContent)
}
