package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// Wearable-tracker CSV ingest. Export report types differ in both column
// names and column sets, so parsing is alias-driven: each canonical metric
// has a list of header spellings, matched case-insensitively, and rows keep
// only the columns the export actually carried.

// activityRow is one parsed CSV line, keyed by normalized date. Missing
// columns stay nil and never overwrite previously imported values.
type activityRow struct {
	Date             string
	Steps            *int
	CaloriesBurned   *float64
	MinutesAsleep    *int
	SleepScore       *int
	VeryActiveMin    *int
	FairlyActiveMin  *int
	LightlyActiveMin *int
	SedentaryMin     *int
	Distance         *float64
}

var dateColumnAliases = []string{"date", "day", "activity date", "sleep date"}

var activityColumnAliases = map[string][]string{
	"steps":              {"steps", "step count"},
	"calories_burned":    {"calories burned", "calories", "activity calories"},
	"minutes_asleep":     {"minutes asleep", "sleep minutes"},
	"sleep_score":        {"sleep score"},
	"very_active_min":    {"minutes very active", "very active minutes"},
	"fairly_active_min":  {"minutes fairly active", "fairly active minutes"},
	"lightly_active_min": {"minutes lightly active", "lightly active minutes"},
	"sedentary_min":      {"minutes sedentary", "sedentary minutes"},
	"distance":           {"distance", "distance (km)", "distance (mi)"},
}

// exportDateLayouts are tried in order when normalizing the date column.
var exportDateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "1/2/2006", "01/02/2006"}

func normalizeExportDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range exportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// parseExportNumber parses a numeric cell, tolerating thousands separators
// ("12,345" steps). Empty cells return ok=false — absent, not zero.
func parseExportNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// findColumn returns the index of the first header matching any alias,
// case-insensitively, or -1.
func findColumn(header []string, aliases []string) int {
	for _, a := range aliases {
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), a) {
				return i
			}
		}
	}
	return -1
}

// parseActivityCSV reads a tracker export and returns one row per parseable
// line. Lines with an unparseable date are skipped; a missing date column is
// a hard error because nothing can be joined without the date key.
func parseActivityCSV(r io.Reader) ([]activityRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	dateIdx := findColumn(header, dateColumnAliases)
	if dateIdx < 0 {
		return nil, fmt.Errorf("could not find a date column in the CSV")
	}

	columnIdx := make(map[string]int, len(activityColumnAliases))
	for key, aliases := range activityColumnAliases {
		if idx := findColumn(header, aliases); idx >= 0 {
			columnIdx[key] = idx
		}
	}

	var rows []activityRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		if dateIdx >= len(fields) {
			continue
		}
		date, ok := normalizeExportDate(fields[dateIdx])
		if !ok {
			continue
		}

		row := activityRow{Date: date}
		for key, idx := range columnIdx {
			if idx >= len(fields) {
				continue
			}
			v, ok := parseExportNumber(fields[idx])
			if !ok {
				continue
			}
			switch key {
			case "calories_burned":
				row.CaloriesBurned = &v
			case "distance":
				row.Distance = &v
			default:
				n := int(math.Round(v))
				switch key {
				case "steps":
					row.Steps = &n
				case "minutes_asleep":
					row.MinutesAsleep = &n
				case "sleep_score":
					row.SleepScore = &n
				case "very_active_min":
					row.VeryActiveMin = &n
				case "fairly_active_min":
					row.FairlyActiveMin = &n
				case "lightly_active_min":
					row.LightlyActiveMin = &n
				case "sedentary_min":
					row.SedentaryMin = &n
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// importActivityCSV ingests a tracker CSV export posted as the request body.
// POST /api/activity/import. Rows merge by day: new non-missing values
// overwrite, missing columns keep whatever an earlier import stored.
func (h *Handler) importActivityCSV(c *gin.Context) {
	userID := c.GetInt("user_id")

	rows, err := parseActivityCSV(c.Request.Body)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	for _, row := range rows {
		_, err := h.db.Exec(c,
			`INSERT INTO activity_metrics (
				user_id, date, steps, calories_burned, minutes_asleep, sleep_score,
				very_active_min, fairly_active_min, lightly_active_min, sedentary_min, distance)
			 VALUES (@userID, @date, @steps, @caloriesBurned, @minutesAsleep, @sleepScore,
				@veryActiveMin, @fairlyActiveMin, @lightlyActiveMin, @sedentaryMin, @distance)
			 ON CONFLICT (user_id, date) DO UPDATE SET
				steps              = COALESCE(EXCLUDED.steps, activity_metrics.steps),
				calories_burned    = COALESCE(EXCLUDED.calories_burned, activity_metrics.calories_burned),
				minutes_asleep     = COALESCE(EXCLUDED.minutes_asleep, activity_metrics.minutes_asleep),
				sleep_score        = COALESCE(EXCLUDED.sleep_score, activity_metrics.sleep_score),
				very_active_min    = COALESCE(EXCLUDED.very_active_min, activity_metrics.very_active_min),
				fairly_active_min  = COALESCE(EXCLUDED.fairly_active_min, activity_metrics.fairly_active_min),
				lightly_active_min = COALESCE(EXCLUDED.lightly_active_min, activity_metrics.lightly_active_min),
				sedentary_min      = COALESCE(EXCLUDED.sedentary_min, activity_metrics.sedentary_min),
				distance           = COALESCE(EXCLUDED.distance, activity_metrics.distance)`,
			pgx.NamedArgs{
				"userID": userID, "date": row.Date,
				"steps": row.Steps, "caloriesBurned": row.CaloriesBurned,
				"minutesAsleep": row.MinutesAsleep, "sleepScore": row.SleepScore,
				"veryActiveMin": row.VeryActiveMin, "fairlyActiveMin": row.FairlyActiveMin,
				"lightlyActiveMin": row.LightlyActiveMin, "sedentaryMin": row.SedentaryMin,
				"distance": row.Distance,
			})
		if err != nil {
			apiError(c, http.StatusInternalServerError, "failed to store activity metrics")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"imported": len(rows)})
}
