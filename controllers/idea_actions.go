package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"
	"eyedea-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IdeaActionRequest struct {
	Comment string `json:"comment"`
}

// workflowStatusCode maps a workflow evaluator error onto the HTTP status
// the UI expects for its error toast.
func workflowStatusCode(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAllowed), errors.Is(err, services.ErrOutOfScope):
		return http.StatusForbidden
	case errors.Is(err, services.ErrAlreadyEvaluated):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func appendComment(ideaID string, user *models.User, text string) (*models.Comment, error) {
	comment := models.Comment{
		CommentID:   uuid.NewString(),
		IdeaID:      ideaID,
		UserID:      user.UserID,
		Username:    user.Username,
		CommentText: text,
		CreateAt:    time.Now(),
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// reviewIdea runs one of the approver review actions (approve, decline,
// request-revision): guard check, status update, optional rationale
// comment, notification to the submitter.
func reviewIdea(c *gin.Context, action services.Action) {
	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	// The body is optional for approve; decline and revision enforce their
	// comment in the workflow guard below.
	var req IdeaActionRequest
	_ = c.ShouldBindJSON(&req)
	req.Comment = strings.TrimSpace(req.Comment)

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if err := services.AuthorizeAction(user, action, &idea, req.Comment); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	target, _ := services.TargetStatus(action)
	now := time.Now()

	// Condition on the status the guard just checked so a concurrent
	// transition surfaces as a conflict instead of being overwritten.
	result := config.DB.Model(&models.Idea{}).
		Where("idea_id = ? AND status = ?", idea.IdeaID, idea.Status).
		Updates(map[string]interface{}{"status": target, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Idea status has changed, please reload"})
		return
	}

	if req.Comment != "" {
		if _, err := appendComment(idea.IdeaID, user, req.Comment); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record comment"})
			return
		}
	}

	var submitter models.User
	if err := config.DB.Where("user_id = ?", idea.SubmittedBy).First(&submitter).Error; err == nil {
		actor := user.Username
		comment := req.Comment
		services.NotifyAsync(func() error {
			return services.NotifyIdeaDecision(submitter.Email, &idea, action, actor, comment)
		})
	}

	var message string
	switch action {
	case services.ActionApprove:
		message = "Idea approved successfully"
	case services.ActionDecline:
		message = "Idea declined successfully"
	default:
		message = "Revision requested successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ApproveIdea moves a pending idea to approved.
func ApproveIdea(c *gin.Context) {
	reviewIdea(c, services.ActionApprove)
}

// DeclineIdea moves a pending idea to declined. A rationale comment is
// mandatory.
func DeclineIdea(c *gin.Context) {
	reviewIdea(c, services.ActionDecline)
}

// RequestRevision sends a pending idea back to its submitter. A rationale
// comment is mandatory.
func RequestRevision(c *gin.Context) {
	reviewIdea(c, services.ActionRequestRevision)
}

// ResubmitIdea returns a revision-requested idea to pending. Only the
// original submitter can resubmit; the comment history is preserved.
func ResubmitIdea(c *gin.Context) {
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

	if err := services.AuthorizeAction(user, services.ActionResubmit, &idea, ""); err != nil {
		c.JSON(workflowStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Idea{}).
		Where("idea_id = ? AND status = ?", idea.IdeaID, idea.Status).
		Updates(map[string]interface{}{"status": services.StatusPending, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resubmit idea"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Idea status has changed, please reload"})
		return
	}

	if idea.AssignedApprover != nil {
		var approver models.User
		if err := config.DB.Where("user_id = ?", *idea.AssignedApprover).First(&approver).Error; err == nil {
			submitter := user.Username
			services.NotifyAsync(func() error {
				return services.NotifyIdeaResubmitted(approver.Email, &idea, submitter)
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Idea resubmitted successfully"})
}
