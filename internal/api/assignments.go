package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

// AssignmentInput is the body for creating an assignment.
type AssignmentInput struct {
	ClassID     uint   `json:"class_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateAssignment godoc
// @Summary      Create an assignment for a class
// @Description  Only the class owner or an admin may add assignments
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  AssignmentInput  true  "Assignment"
// @Success      201   {object} models.Assignment
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Failure      404   {object} map[string]string
// @Security     BearerAuth
// @Router       /assignments [post]
func CreateAssignment(c *gin.Context) {
	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	class, err := db.GetClassByID(context.Background(), input.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch class"})
		return
	}
	if !callerAllowed(c, class.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	assignment := models.Assignment{
		ClassID:     input.ClassID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := db.CreateAssignment(context.Background(), &assignment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListAssignmentsByClass godoc
// @Summary      List a class's assignments
// @Tags         assignments
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200 {array} models.Assignment
// @Security     BearerAuth
// @Router       /classes/{id}/assignments [get]
func ListAssignmentsByClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	assignments, err := db.ListAssignmentsByClass(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// RecordSubmission godoc
// @Summary      Record a student submission
// @Description  Atomically bumps the assignment's submission counter
// @Tags         assignments
// @Produce      json
// @Param        id  path  int  true  "Assignment ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /assignments/{id}/submit [patch]
func RecordSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	if err := db.RecordSubmission(context.Background(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission recorded"})
}
