package controllers

import (
	"net/http"
	"strings"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"

	"github.com/gin-gonic/gin"
)

// GetComments returns an idea's comment log, oldest first.
func GetComments(c *gin.Context) {
	id := c.Param("id")

	var comments []models.Comment
	if err := config.DB.Where("idea_id = ?", id).
		Order("create_at ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment appends a comment to an idea.
func AddComment(c *gin.Context) {
	type CommentRequest struct {
		CommentText string `json:"comment_text" binding:"required"`
	}

	id := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CommentText = strings.TrimSpace(req.CommentText)
	if req.CommentText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ? AND delete_at IS NULL", id).
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	comment, err := appendComment(idea.IdeaID, user, req.CommentText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}
