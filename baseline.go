package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// validateBaseline checks configuration integrity: every ingredient named by
// the adjust priority must have a policy entry with a positive calorie
// density. A hole here would silently distort the allocation order at
// report time, so it is rejected at write time too.
func validateBaseline(b *coachBaseline) error {
	for _, item := range b.AdjustPriority {
		info, ok := b.Ingredients[item]
		if !ok {
			return fmt.Errorf("unknown ingredient %q in adjust_priority", item)
		}
		if info.KcalPerUnit <= 0 {
			return fmt.Errorf("ingredient %q must have a positive kcal_per_unit", item)
		}
	}
	if b.CardioPreferredSource != "" {
		if _, ok := b.Ingredients[b.CardioPreferredSource]; !ok {
			return fmt.Errorf("unknown cardio preferred source %q", b.CardioPreferredSource)
		}
	}
	return nil
}

// getBaseline returns the coach baseline for the authenticated user.
// GET /api/coach/baseline.
func (h *Handler) getBaseline(c *gin.Context) {
	userID := c.GetInt("user_id")

	b, err := h.loadBaseline(c, userID)
	if err != nil {
		apiError(c, http.StatusNotFound, "baseline not found")
		return
	}

	c.JSON(http.StatusOK, b)
}

// patchBaseline updates only the provided baseline fields.
// PATCH /api/coach/baseline. The current row is loaded, the patch merged in
// memory, and the merged baseline validated before anything is written — a
// priority list referencing a missing ingredient never reaches the database.
func (h *Handler) patchBaseline(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchBaselineRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.loadBaseline(c, userID)
	if err != nil {
		apiError(c, http.StatusNotFound, "baseline not found")
		return
	}

	if body.Calories != nil {
		b.Calories = *body.Calories
	}
	if body.ProteinG != nil {
		b.ProteinG = *body.ProteinG
	}
	if body.CarbsG != nil {
		b.CarbsG = *body.CarbsG
	}
	if body.FatG != nil {
		b.FatG = *body.FatG
	}
	if body.ItemsG != nil {
		b.ItemsG = body.ItemsG
	}
	if body.Ingredients != nil {
		b.Ingredients = body.Ingredients
	}
	if body.AdjustPriority != nil {
		b.AdjustPriority = body.AdjustPriority
	}
	if body.CardioThresholdMin != nil {
		b.CardioThresholdMin = *body.CardioThresholdMin
	}
	if body.CardioAddCarbsG != nil {
		b.CardioAddCarbsG = *body.CardioAddCarbsG
	}
	if body.CardioPreferredSource != nil {
		b.CardioPreferredSource = *body.CardioPreferredSource
	}

	if err := validateBaseline(&b); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	// JSONB columns go over the wire as JSON text; pgx has no default
	// encoding for domain map types.
	itemsJSON, err := json.Marshal(b.ItemsG)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode items")
		return
	}
	ingredientsJSON, err := json.Marshal(b.Ingredients)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode ingredients")
		return
	}

	updated, err := queryOne[coachBaseline](h.db, c,
		`UPDATE coach_baselines SET
			calories                = @calories,
			protein_g               = @proteinG,
			carbs_g                 = @carbsG,
			fat_g                   = @fatG,
			items_g                 = @itemsG::jsonb,
			ingredients             = @ingredients::jsonb,
			adjust_priority         = @adjustPriority,
			cardio_threshold_min    = @cardioThresholdMin,
			cardio_add_carbs_g      = @cardioAddCarbsG,
			cardio_preferred_source = @cardioPreferredSource
		 WHERE user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":                userID,
			"calories":              b.Calories,
			"proteinG":              b.ProteinG,
			"carbsG":                b.CarbsG,
			"fatG":                  b.FatG,
			"itemsG":                string(itemsJSON),
			"ingredients":           string(ingredientsJSON),
			"adjustPriority":        b.AdjustPriority,
			"cardioThresholdMin":    b.CardioThresholdMin,
			"cardioAddCarbsG":       b.CardioAddCarbsG,
			"cardioPreferredSource": b.CardioPreferredSource,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update baseline")
		return
	}

	c.JSON(http.StatusOK, updated)
}
