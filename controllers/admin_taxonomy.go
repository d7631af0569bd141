package controllers

import (
	"net/http"
	"time"

	"eyedea-api/config"
	"eyedea-api/models"
	"eyedea-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Taxonomy handlers serve both the admin panel and the public registration
// form. Deleting a taxonomy entity never cascades: ideas and users keep
// their string references.

// GetPillars lists all pillars.
func GetPillars(c *gin.Context) {
	var pillars []models.Pillar
	if err := config.DB.Where("delete_at IS NULL").
		Order("name ASC").
		Find(&pillars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pillars"})
		return
	}
	c.JSON(http.StatusOK, pillars)
}

// CreatePillar adds a pillar.
func CreatePillar(c *gin.Context) {
	type PillarRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req PillarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	pillar := models.Pillar{
		PillarID: uuid.NewString(),
		Name:     utils.SanitizeInput(req.Name),
		CreateAt: &now,
	}
	if err := config.DB.Create(&pillar).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pillar"})
		return
	}
	c.JSON(http.StatusOK, pillar)
}

// UpdatePillar renames a pillar.
func UpdatePillar(c *gin.Context) {
	type PillarRequest struct {
		Name string `json:"name" binding:"required"`
	}

	id := c.Param("id")

	var req PillarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.Pillar{}).
		Where("pillar_id = ? AND delete_at IS NULL", id).
		Update("name", utils.SanitizeInput(req.Name))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pillar"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pillar not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pillar updated successfully"})
}

// DeletePillar soft-deletes a pillar.
func DeletePillar(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Model(&models.Pillar{}).
		Where("pillar_id = ? AND delete_at IS NULL", id).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pillar"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pillar not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pillar deleted successfully"})
}

// GetDepartments lists departments, optionally filtered by pillar.
func GetDepartments(c *gin.Context) {
	query := config.DB.Where("delete_at IS NULL")
	if pillar := c.Query("pillar"); pillar != "" {
		query = query.Where("pillar = ?", pillar)
	}

	var departments []models.Department
	if err := query.Order("name ASC").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
		return
	}
	c.JSON(http.StatusOK, departments)
}

// CreateDepartment adds a department under a pillar.
func CreateDepartment(c *gin.Context) {
	type DepartmentRequest struct {
		Name   string `json:"name" binding:"required"`
		Pillar string `json:"pillar" binding:"required"`
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	department := models.Department{
		DepartmentID: uuid.NewString(),
		Name:         utils.SanitizeInput(req.Name),
		Pillar:       utils.SanitizeInput(req.Pillar),
		CreateAt:     &now,
	}
	if err := config.DB.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
		return
	}
	c.JSON(http.StatusOK, department)
}

// UpdateDepartment renames a department or moves it to another pillar.
func UpdateDepartment(c *gin.Context) {
	type DepartmentRequest struct {
		Name   string `json:"name" binding:"required"`
		Pillar string `json:"pillar" binding:"required"`
	}

	id := c.Param("id")

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.Department{}).
		Where("department_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{
			"name":   utils.SanitizeInput(req.Name),
			"pillar": utils.SanitizeInput(req.Pillar),
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department updated successfully"})
}

// DeleteDepartment soft-deletes a department.
func DeleteDepartment(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Model(&models.Department{}).
		Where("department_id = ? AND delete_at IS NULL", id).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}

// GetTeams lists teams, optionally filtered by pillar and department.
func GetTeams(c *gin.Context) {
	query := config.DB.Where("delete_at IS NULL")
	if pillar := c.Query("pillar"); pillar != "" {
		query = query.Where("pillar = ?", pillar)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	var teams []models.Team
	if err := query.Order("name ASC").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam adds a team under a pillar and department.
func CreateTeam(c *gin.Context) {
	type TeamRequest struct {
		Name       string `json:"name" binding:"required"`
		Pillar     string `json:"pillar" binding:"required"`
		Department string `json:"department" binding:"required"`
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	team := models.Team{
		TeamID:     uuid.NewString(),
		Name:       utils.SanitizeInput(req.Name),
		Pillar:     utils.SanitizeInput(req.Pillar),
		Department: utils.SanitizeInput(req.Department),
		CreateAt:   &now,
	}
	if err := config.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam renames a team or moves it within the taxonomy.
func UpdateTeam(c *gin.Context) {
	type TeamRequest struct {
		Name       string `json:"name" binding:"required"`
		Pillar     string `json:"pillar" binding:"required"`
		Department string `json:"department" binding:"required"`
	}

	id := c.Param("id")

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.Team{}).
		Where("team_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{
			"name":       utils.SanitizeInput(req.Name),
			"pillar":     utils.SanitizeInput(req.Pillar),
			"department": utils.SanitizeInput(req.Department),
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team updated successfully"})
}

// DeleteTeam soft-deletes a team.
func DeleteTeam(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Model(&models.Team{}).
		Where("team_id = ? AND delete_at IS NULL", id).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
