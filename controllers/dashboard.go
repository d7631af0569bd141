package controllers

import (
	"net/http"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"
	"eyedea-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func countIdeas(base func() *gorm.DB, conds ...interface{}) int64 {
	var count int64
	query := base()
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	query.Count(&count)
	return count
}

func liveIdeas() *gorm.DB {
	return config.DB.Model(&models.Idea{}).Where("delete_at IS NULL")
}

// currentBestIdea returns the flagged best idea, or nil when none is set.
func currentBestIdea() *models.Idea {
	var best models.Idea
	if err := config.DB.Where("is_best_idea = ? AND delete_at IS NULL", true).
		First(&best).Error; err != nil {
		return nil
	}
	return &best
}

// GetDashboardStats returns the per-status headline counts plus the
// caller's own submission count and the current best idea.
func GetDashboardStats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	stats := gin.H{
		"total_ideas":              countIdeas(liveIdeas),
		"pending_ideas":            countIdeas(liveIdeas, "status = ?", services.StatusPending),
		"approved_ideas":           countIdeas(liveIdeas, "status = ?", services.StatusApproved),
		"declined_ideas":           countIdeas(liveIdeas, "status = ?", services.StatusDeclined),
		"revision_requested_ideas": countIdeas(liveIdeas, "status = ?", services.StatusRevisionRequested),
		"implemented_ideas":        countIdeas(liveIdeas, "status = ?", services.StatusImplemented),
		"assigned_to_te_ideas":     countIdeas(liveIdeas, "status = ?", services.StatusAssignedToTE),
		"my_ideas":                 countIdeas(liveIdeas, "submitted_by = ?", user.UserID),
		"best_idea":                currentBestIdea(),
	}

	c.JSON(http.StatusOK, stats)
}

// GetDashboardAnalytics aggregates the evaluation and workflow analytics,
// optionally restricted to a creation date window (start_date/end_date).
func GetDashboardAnalytics(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	scoped := func() *gorm.DB {
		query := liveIdeas()
		if startDate != "" {
			query = query.Where("create_at >= ?", startDate)
		}
		if endDate != "" {
			query = query.Where("create_at <= ?", endDate)
		}
		return query
	}

	total := countIdeas(scoped)
	declined := countIdeas(scoped, "status = ?", services.StatusDeclined)
	approved := countIdeas(scoped, "status = ?", services.StatusApproved)
	implemented := countIdeas(scoped, "status = ?", services.StatusImplemented)
	assignedToTE := countIdeas(scoped, "status = ?", services.StatusAssignedToTE)
	pending := countIdeas(scoped, "status = ?", services.StatusPending)
	revision := countIdeas(scoped, "status = ?", services.StatusRevisionRequested)

	quickWins := countIdeas(scoped, "is_quick_win = ?", true)
	lowComplexity := countIdeas(scoped, "complexity_level = ?", models.ComplexityLow)
	mediumComplexity := countIdeas(scoped, "complexity_level = ?", models.ComplexityMedium)
	highComplexity := countIdeas(scoped, "complexity_level = ?", models.ComplexityHigh)

	var savings struct {
		TotalCost    float64
		TotalHours   float64
		TotalMinutes float64
	}
	scoped().
		Select("COALESCE(SUM(CASE WHEN savings_type = ? THEN cost_savings ELSE 0 END), 0) AS total_cost, "+
			"COALESCE(SUM(CASE WHEN savings_type = ? THEN time_saved_hours ELSE 0 END), 0) AS total_hours, "+
			"COALESCE(SUM(CASE WHEN savings_type = ? THEN time_saved_minutes ELSE 0 END), 0) AS total_minutes",
			models.SavingsCost, models.SavingsTime, models.SavingsTime).
		Scan(&savings)

	totalHours, totalMinutes := services.FoldTime(savings.TotalHours, savings.TotalMinutes)

	c.JSON(http.StatusOK, gin.H{
		"quick_wins_count": quickWins,
		"complexity_counts": gin.H{
			"low":    lowComplexity,
			"medium": mediumComplexity,
			"high":   highComplexity,
		},
		"best_idea":          currentBestIdea(),
		"total_cost_savings": savings.TotalCost,
		"total_time_saved": gin.H{
			"hours":   totalHours,
			"minutes": totalMinutes,
		},
		"total_ideas":          total,
		"approved_count":       approved,
		"declined_count":       declined,
		"implemented_count":    implemented,
		"assigned_to_te_count": assignedToTE,
		"pending_count":        pending,
		"revision_count":       revision,
		"approval_rate":        services.Rate(approved, total, declined),
		"implementation_rate":  services.Rate(implemented, total, declined),
		"assigned_to_te_rate":  services.Rate(assignedToTE, total, declined),
		"charts_data": gin.H{
			"complexity_chart": []gin.H{
				{"name": "Low Complexity", "value": lowComplexity},
				{"name": "Medium Complexity", "value": mediumComplexity},
				{"name": "High Complexity", "value": highComplexity},
			},
			"quick_wins_chart": []gin.H{
				{"name": "Quick Wins", "value": quickWins},
				{"name": "Not Quick Wins", "value": lowComplexity + mediumComplexity + highComplexity},
			},
			"status_chart": []gin.H{
				{"name": "Approved", "value": approved},
				{"name": "Implemented", "value": implemented},
				{"name": "Assigned to T&E", "value": assignedToTE},
				{"name": "Pending", "value": pending},
				{"name": "Revision Requested", "value": revision},
				{"name": "Declined", "value": declined},
			},
		},
	})
}
