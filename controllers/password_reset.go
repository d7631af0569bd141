package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"time"

	"eyedea-api/config"
	"eyedea-api/models"
	"eyedea-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Swappable in tests.
var sendMailFunc = config.SendMail

const resetTokenTTL = time.Hour

type resetClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

var errInvalidResetToken = errors.New("invalid or expired reset token")

// createResetToken signs a short-lived password reset token for the email.
func createResetToken(email string, now time.Time) (string, error) {
	claims := resetClaims{
		Email:     email,
		TokenType: "password_reset",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// parseResetToken verifies a reset token and returns the email it was
// issued for. Any malformed, mistyped or expired token is an invalid link.
func parseResetToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &resetClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidResetToken
	}
	claims, ok := token.Claims.(*resetClaims)
	if !ok || claims.Email == "" || claims.TokenType != "password_reset" {
		return "", errInvalidResetToken
	}
	return claims.Email, nil
}

var resetMailTmpl = template.Must(template.New("reset").Parse(`<html><body>
<h2>Password Reset Request</h2>
<p>Hello {{.Username}},</p>
<p>You requested to reset your password for Eye-dea.</p>
<p>Click the link below to reset your password (valid for 1 hour):</p>
<p><a href="{{.ResetLink}}">Reset Password</a></p>
<p>If you didn't request this, please ignore this email.</p>
<br>
<p>Best regards,<br>The Eye-dea Team</p>
</body></html>`))

// ForgotPassword issues a reset link. The response is identical whether or
// not the email exists, to prevent account enumeration.
func ForgotPassword(c *gin.Context) {
	type ForgotPasswordRequest struct {
		Email string `json:"email" binding:"required"`
	}

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	genericReply := gin.H{"message": "If the email exists, a password reset link has been sent"}

	var user models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusOK, genericReply)
		return
	}

	token, err := createResetToken(user.Email, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset token"})
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, url.QueryEscape(token))

	var body bytes.Buffer
	if err := resetMailTmpl.Execute(&body, map[string]string{
		"Username":  user.Username,
		"ResetLink": resetLink,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render reset email"})
		return
	}

	if err := sendMailFunc([]string{user.Email}, "Password Reset Request", body.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, genericReply)
}

// ResetPassword consumes a reset token and sets the new password.
func ResetPassword(c *gin.Context) {
	type ResetPasswordRequest struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	email, err := parseResetToken(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
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

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully. You can now login with your new password."})
}
