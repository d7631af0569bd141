package controllers

import (
	"net/http"
	"time"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"
	"eyedea-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IdeaRequest struct {
	Pillar            string  `json:"pillar" binding:"required"`
	Title             string  `json:"title" binding:"required"`
	ImprovementType   string  `json:"improvement_type" binding:"required"`
	CurrentProcess    string  `json:"current_process" binding:"required"`
	SuggestedSolution string  `json:"suggested_solution" binding:"required"`
	Benefits          string  `json:"benefits" binding:"required"`
	TargetCompletion  string  `json:"target_completion" binding:"required"`
	Department        *string `json:"department"`
	Team              *string `json:"team"`
}

// GetIdeas lists ideas, newest first, with optional filters.
func GetIdeas(c *gin.Context) {
	query := config.DB.Where("delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if pillar := c.Query("pillar"); pillar != "" {
		query = query.Where("pillar = ?", pillar)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}
	if team := c.Query("team"); team != "" {
		query = query.Where("team = ?", team)
	}
	if submittedBy := c.Query("submitted_by"); submittedBy != "" {
		query = query.Where("submitted_by = ?", submittedBy)
	}
	if approver := c.Query("assigned_approver"); approver != "" {
		query = query.Where("assigned_approver = ?", approver)
	}

	var ideas []models.Idea
	if err := query.Order("create_at DESC").Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ideas"})
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// nextIdeaNumber produces the auto-generated display number. Soft-deleted
// ideas keep their numbers, so the count is unscoped.
func nextIdeaNumber() (string, error) {
	var count int64
	if err := config.DB.Model(&models.Idea{}).Count(&count).Error; err != nil {
		return "", err
	}
	return models.FormatIdeaNumber(int(count) + 1), nil
}

// findApproverForIdea picks the approver whose approval scope covers the
// idea's pillar or department, falling back to the approver's own
// department. The same scope rule later gates the review actions, so the
// assigned approver is always able to act.
func findApproverForIdea(pillar string, department *string) *models.User {
	var approvers []models.User
	if err := config.DB.Where("role = ? AND delete_at IS NULL", models.RoleApprover).
		Find(&approvers).Error; err != nil {
		return nil
	}

	for i := range approvers {
		if services.ScopeAllows(&approvers[i], pillar, department) {
			return &approvers[i]
		}
	}
	return nil
}

// CreateIdea submits a new idea in pending status and notifies the
// auto-assigned approver.
func CreateIdea(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidImprovementType(req.ImprovementType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid improvement type"})
		return
	}

	ideaNumber, err := nextIdeaNumber()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate idea number"})
		return
	}

	approver := findApproverForIdea(req.Pillar, req.Department)

	now := time.Now()
	idea := models.Idea{
		IdeaID:              uuid.NewString(),
		IdeaNumber:          ideaNumber,
		Pillar:              req.Pillar,
		Title:               req.Title,
		ImprovementType:     req.ImprovementType,
		CurrentProcess:      req.CurrentProcess,
		SuggestedSolution:   req.SuggestedSolution,
		Benefits:            req.Benefits,
		TargetCompletion:    req.TargetCompletion,
		Department:          req.Department,
		Team:                req.Team,
		Status:              services.StatusPending,
		SubmittedBy:         user.UserID,
		SubmittedByUsername: user.Username,
		CreateAt:            &now,
		UpdateAt:            &now,
	}
	if approver != nil {
		idea.AssignedApprover = &approver.UserID
		idea.AssignedApproverUsername = &approver.Username
	}

	if err := config.DB.Create(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create idea"})
		return
	}

	if approver != nil {
		approverEmail := approver.Email
		submitter := user.Username
		services.NotifyAsync(func() error {
			return services.NotifyIdeaSubmitted(approverEmail, &idea, submitter)
		})
	}

	c.JSON(http.StatusOK, idea)
}

// GetIdea returns a single idea by id.
func GetIdea(c *gin.Context) {
	id := c.Param("id")

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateIdea lets the submitter (or an admin) edit the idea content.
// Workflow state and evaluation fields are untouchable here.
func UpdateIdea(c *gin.Context) {
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

	if idea.SubmittedBy != user.UserID && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this idea"})
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidImprovementType(req.ImprovementType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid improvement type"})
		return
	}

	now := time.Now()
	idea.Pillar = req.Pillar
	idea.Title = req.Title
	idea.ImprovementType = req.ImprovementType
	idea.CurrentProcess = req.CurrentProcess
	idea.SuggestedSolution = req.SuggestedSolution
	idea.Benefits = req.Benefits
	idea.TargetCompletion = req.TargetCompletion
	idea.Department = req.Department
	idea.Team = req.Team
	idea.UpdateAt = &now

	if err := config.DB.Save(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea"})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// DeleteIdea soft-deletes an idea. Admin only; submitters withdraw ideas
// through the review workflow instead. Comments stay attached for the
// audit trail; the record itself is never physically removed.
func DeleteIdea(c *gin.Context) {
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

	if user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this idea"})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Idea{}).
		Where("idea_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{"delete_at": now, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete idea"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Idea deleted successfully"})
}
