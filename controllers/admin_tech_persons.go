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

type techPersonRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
}

// GetTechPersons lists T&E personnel. Any authenticated user can read the
// list; C.I. Excellence evaluators pick from it when assigning ideas.
func GetTechPersons(c *gin.Context) {
	var persons []models.TechPerson
	if err := config.DB.Where("delete_at IS NULL").
		Order("name ASC").
		Find(&persons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tech persons"})
		return
	}
	c.JSON(http.StatusOK, persons)
}

// CreateTechPerson adds a T&E person.
func CreateTechPerson(c *gin.Context) {
	var req techPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != nil && *req.Email != "" && !utils.ValidateEmail(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	now := time.Now()
	person := models.TechPerson{
		TechPersonID:   uuid.NewString(),
		Name:           utils.SanitizeInput(req.Name),
		Email:          req.Email,
		Specialization: req.Specialization,
		CreateAt:       &now,
	}
	if err := config.DB.Create(&person).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tech person"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// UpdateTechPerson edits a T&E person.
func UpdateTechPerson(c *gin.Context) {
	id := c.Param("id")

	var req techPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != nil && *req.Email != "" && !utils.ValidateEmail(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	result := config.DB.Model(&models.TechPerson{}).
		Where("tech_person_id = ? AND delete_at IS NULL", id).
		Updates(map[string]interface{}{
			"name":           utils.SanitizeInput(req.Name),
			"email":          req.Email,
			"specialization": req.Specialization,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tech person"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tech person not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tech person updated successfully"})
}

// DeleteTechPerson soft-deletes a T&E person. Ideas already assigned keep
// the person's name.
func DeleteTechPerson(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Model(&models.TechPerson{}).
		Where("tech_person_id = ? AND delete_at IS NULL", id).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tech person"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tech person not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tech person deleted successfully"})
}
