package controllers

import (
	"fmt"
	"net/http"
	"time"

	"eyedea-api/config"
	"eyedea-api/models"
	"eyedea-api/services"
	"eyedea-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUsers lists all accounts for the admin panel.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("delete_at IS NULL").
		Order("create_at DESC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser edits an account's role, taxonomy placement and approval
// scope. Approval scopes are wiped when the role is not approver.
func UpdateUser(c *gin.Context) {
	type UserUpdateRequest struct {
		Username            string   `json:"username" binding:"required"`
		Email               string   `json:"email" binding:"required,email"`
		Role                string   `json:"role" binding:"required"`
		Pillar              *string  `json:"pillar"`
		Department          *string  `json:"department"`
		Team                *string  `json:"team"`
		Manager             *string  `json:"manager"`
		ApprovedPillars     []string `json:"approved_pillars"`
		ApprovedDepartments []string `json:"approved_departments"`
	}

	id := c.Param("id")

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", id).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	approvedPillars := req.ApprovedPillars
	approvedDepartments := req.ApprovedDepartments
	if req.Role != models.RoleApprover {
		approvedPillars = []string{}
		approvedDepartments = []string{}
	}
	if approvedPillars == nil {
		approvedPillars = []string{}
	}
	if approvedDepartments == nil {
		approvedDepartments = []string{}
	}

	now := time.Now()
	user.Username = req.Username
	user.Email = req.Email
	user.Role = req.Role
	user.Pillar = req.Pillar
	user.Department = req.Department
	user.Team = req.Team
	user.Manager = req.Manager
	user.ApprovedPillars = approvedPillars
	user.ApprovedDepartments = approvedDepartments
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser soft-deletes an account. Their ideas and comments remain.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	now := time.Now()
	result := config.DB.Model(&models.User{}).
		Where("user_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{"delete_at": now, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// BulkUploadUsers imports accounts from the CSV template. Rows that fail
// validation or collide with existing usernames are reported and skipped;
// the rest are created.
func BulkUploadUsers(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload file is required"})
		return
	}
	defer file.Close()

	rows, rowErrors, err := services.ParseUserCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to process file: %v", err)})
		return
	}

	created := make([]string, 0, len(rows))
	now := time.Now()

	for _, row := range rows {
		var count int64
		config.DB.Model(&models.User{}).
			Where("(username = ? OR email = ?) AND delete_at IS NULL", row.User.Username, row.User.Email).
			Count(&count)
		if count > 0 {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: username %q already exists", row.Line, row.User.Username))
			continue
		}

		hashed, err := utils.HashPassword(row.Password)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: failed to process password", row.Line))
			continue
		}

		user := row.User
		user.UserID = uuid.NewString()
		user.Password = hashed
		createAt := now
		user.CreateAt = &createAt
		user.UpdateAt = &createAt

		if err := config.DB.Create(&user).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		created = append(created, user.Username)
	}

	if rowErrors == nil {
		rowErrors = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Bulk upload completed. Created %d users.", len(created)),
		"created_users": created,
		"errors":        rowErrors,
	})
}
