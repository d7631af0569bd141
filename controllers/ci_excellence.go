package controllers

import (
	"fmt"
	"net/http"
	"time"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"
	"eyedea-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CIEvaluateIdea records the C.I. Excellence Team's evaluation of an
// approved idea. Quick wins go straight to implemented; a tech assignment
// moves the idea to assigned_to_te. A saved evaluation is final.
func CIEvaluateIdea(c *gin.Context) {
	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var evaluation services.Evaluation
	if err := c.ShouldBindJSON(&evaluation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if err := services.AuthorizeAction(user, services.ActionEvaluate, &idea, ""); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	if err := evaluation.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation.Apply(&idea, user, time.Now())

	// Guard against a concurrent evaluation: the update only lands if the
	// idea is still unevaluated.
	result := config.DB.Model(&models.Idea{}).
		Where("idea_id = ? AND evaluated_by IS NULL", idea.IdeaID).
		Updates(map[string]interface{}{
			"is_quick_win":          idea.IsQuickWin,
			"complexity_level":      idea.ComplexityLevel,
			"savings_type":          idea.SavingsType,
			"cost_savings":          idea.CostSavings,
			"time_saved_hours":      idea.TimeSavedHours,
			"time_saved_minutes":    idea.TimeSavedMinutes,
			"evaluation_notes":      idea.EvaluationNotes,
			"assigned_to_tech":      idea.AssignedToTech,
			"tech_person_name":      idea.TechPersonName,
			"evaluated_by":          idea.EvaluatedBy,
			"evaluated_by_username": idea.EvaluatedByUsername,
			"evaluated_at":          idea.EvaluatedAt,
			"status":                idea.Status,
			"update_at":             idea.UpdateAt,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save evaluation"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Idea was evaluated by someone else"})
		return
	}

	var submitter models.User
	if err := config.DB.Where("user_id = ?", idea.SubmittedBy).First(&submitter).Error; err == nil {
		actor := user.Username
		eval := evaluation
		services.NotifyAsync(func() error {
			return services.NotifyIdeaEvaluated(submitter.Email, &idea, &eval, actor)
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Idea evaluated successfully"})
}

// CIUpdateStatus lets the C.I. Excellence Team move an idea assigned to
// T&E to implemented, revision_requested or declined.
func CIUpdateStatus(c *gin.Context) {
	type StatusUpdateRequest struct {
		NewStatus string `json:"new_status" binding:"required"`
	}

	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.ValidStatus(req.NewStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if err := services.AuthorizeAction(user, services.ActionUpdateTEStatus, &idea, ""); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}
	if err := services.AuthorizeTEStatus(&idea, req.NewStatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.Idea{}).
		Where("idea_id = ?", idea.IdeaID).
		Updates(map[string]interface{}{
			"status":                     req.NewStatus,
			"status_updated_by":          user.UserID,
			"status_updated_by_username": user.Username,
			"update_at":                  now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Idea status updated to %s", req.NewStatus)})
}

// MarkBestIdea flags one idea as the best Eye-dea. The previous holder
// loses the flag in the same transaction, keeping at most one system-wide.
func MarkBestIdea(c *gin.Context) {
	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if err := services.AuthorizeAction(user, services.ActionMarkBestIdea, &idea, ""); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	if err := setBestIdea(idea.IdeaID, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark best idea"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Idea marked as best Eye-dea"})
}

// SetBestIdea sets or clears the best idea flag on one idea, preserving
// the at-most-one invariant when setting.
func SetBestIdea(c *gin.Context) {
	type BestIdeaRequest struct {
		IsBestIdea bool `json:"is_best_idea"`
	}

	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req BestIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if err := services.AuthorizeAction(user, services.ActionMarkBestIdea, &idea, ""); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	if err := setBestIdea(idea.IdeaID, req.IsBestIdea); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update best idea status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Best idea status updated"})
}

func setBestIdea(ideaID string, isBest bool) error {
	now := time.Now()
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if isBest {
			if err := tx.Model(&models.Idea{}).
				Where("is_best_idea = ?", true).
				Updates(map[string]interface{}{"is_best_idea": false, "update_at": now}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Idea{}).
			Where("idea_id = ?", ideaID).
			Updates(map[string]interface{}{"is_best_idea": isBest, "update_at": now}).Error
	})
}
