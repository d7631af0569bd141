package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"eyedea-api/config"
	"eyedea-api/middleware"
	"eyedea-api/models"
	"eyedea-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username   string  `json:"username" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Role       string  `json:"role"`
	Pillar     *string `json:"pillar"`
	Department *string `json:"department"`
	Team       *string `json:"team"`
	Manager    *string `json:"manager"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Register creates a new account. Registration always produces an ordinary
// user unless an admin-supplied role is present; approver scopes are
// assigned later through the admin panel.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Username = utils.SanitizeInput(req.Username)
	req.Email = utils.SanitizeInput(req.Email)

	var count int64
	config.DB.Model(&models.User{}).
		Where("username = ? AND delete_at IS NULL", req.Username).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	config.DB.Model(&models.User{}).
		Where("email = ? AND delete_at IS NULL", req.Email).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	now := time.Now()
	user := models.User{
		UserID:              uuid.NewString(),
		Username:            req.Username,
		Email:               req.Email,
		Password:            hashed,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Role:                role,
		Pillar:              req.Pillar,
		Department:          req.Department,
		Team:                req.Team,
		Manager:             req.Manager,
		ApprovedPillars:     []string{},
		ApprovedDepartments: []string{},
		CreateAt:            &now,
		UpdateAt:            &now,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ? AND delete_at IS NULL", req.Username).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// GetMe returns the current user profile.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// SetSubRole lets an approver choose between the plain approver role and
// the C.I. Excellence Team for the current session.
func SetSubRole(c *gin.Context) {
	type SubRoleRequest struct {
		SubRole string `json:"sub_role" binding:"required"`
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	if user.Role != models.RoleApprover {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only approvers can set sub-role"})
		return
	}

	var req SubRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidSubRole(req.SubRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sub-role"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.User{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{"sub_role": req.SubRole, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set sub-role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sub-role set successfully", "sub_role": req.SubRole})
}

// ChangePassword handles password change
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.User{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{"password": hashed, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// generateToken creates JWT token
func generateToken(user models.User) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 * 30 // default 30 days
	}

	claims := middleware.Claims{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
