package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

// TeacherRequestInput is the application body. Every field is required.
type TeacherRequestInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Image      string `json:"image" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Category   string `json:"category" binding:"required"`
}

// SubmitTeacherRequest godoc
// @Summary      Apply to become a teacher
// @Description  One application per email; a resolved one blocks resubmission unless reapply is enabled
// @Tags         teacher-requests
// @Accept       json
// @Produce      json
// @Param        body  body  TeacherRequestInput  true  "Application"
// @Success      201   {object} models.TeacherRequest
// @Failure      400   {object} map[string]string
// @Failure      409   {object} map[string]string
// @Security     BearerAuth
// @Router       /teacher-requests [post]
func SubmitTeacherRequest(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TeacherRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		// You can only apply as yourself.
		if !callerAllowed(c, input.Email) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		req := models.TeacherRequest{
			Name:       input.Name,
			Email:      input.Email,
			Image:      input.Image,
			Title:      input.Title,
			Experience: input.Experience,
			Category:   input.Category,
		}
		if err := db.SubmitTeacherRequest(context.Background(), &req, cfg.AllowReapply); err != nil {
			if errors.Is(err, db.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "A request already exists for this email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
			return
		}
		c.JSON(http.StatusCreated, req)
	}
}

// GetTeacherRequest godoc
// @Summary      Get the application for an email
// @Tags         teacher-requests
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200 {object} models.TeacherRequest
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /teacher-requests/{email} [get]
func GetTeacherRequest(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	req, err := db.GetTeacherRequestByEmail(context.Background(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListTeacherRequests godoc
// @Summary      List all teacher applications
// @Tags         teacher-requests
// @Produce      json
// @Success      200 {array} models.TeacherRequest
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /teacher-requests [get]
func ListTeacherRequests(c *gin.Context) {
	reqs, err := db.ListTeacherRequests(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// ApproveTeacherRequest godoc
// @Summary      Approve a teacher application
// @Description  Marks the request accepted and promotes the account in one transaction
// @Tags         teacher-requests
// @Produce      json
// @Param        id  path  int  true  "Request ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /teacher-requests/{id}/approve [patch]
func ApproveTeacherRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := db.ApproveTeacherRequest(context.Background(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request approved"})
}

// RejectTeacherRequest godoc
// @Summary      Reject a teacher application
// @Tags         teacher-requests
// @Produce      json
// @Param        id  path  int  true  "Request ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /teacher-requests/{id}/reject [patch]
func RejectTeacherRequest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := db.RejectTeacherRequest(context.Background(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}
