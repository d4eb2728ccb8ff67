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

// ClassInput is the class proposal body. Every field is required.
type ClassInput struct {
	Title       string `json:"title" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Price       *int64 `json:"price" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

// ProposeClass godoc
// @Summary      Propose a new class
// @Description  Teachers only; the class starts out pending moderation
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        body  body  ClassInput  true  "Class"
// @Success      201   {object} models.Class
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Security     BearerAuth
// @Router       /classes [post]
func ProposeClass(c *gin.Context) {
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	caller := c.GetString("email")
	teacher, err := db.IsTeacher(context.Background(), caller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}
	if !teacher {
		admin, err := db.IsAdmin(context.Background(), caller)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
			return
		}
		if !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Teacher access required"})
			return
		}
	}
	// Classes are always owned by their submitter.
	if input.Email != caller {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	class := models.Class{
		Title:       input.Title,
		Name:        input.Name,
		Email:       input.Email,
		Price:       *input.Price,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := db.CreateClass(context.Background(), &class); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}
	c.JSON(http.StatusCreated, class)
}

// ListApprovedClasses godoc
// @Summary      List approved classes
// @Tags         classes
// @Produce      json
// @Success      200 {array} models.Class
// @Router       /classes [get]
func ListApprovedClasses(c *gin.Context) {
	classes, err := db.ListApprovedClasses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListAllClasses godoc
// @Summary      List classes in every moderation state
// @Tags         classes
// @Produce      json
// @Success      200 {array} models.Class
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/all [get]
func ListAllClasses(c *gin.Context) {
	classes, err := db.ListAllClasses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary      Get a class by id
// @Tags         classes
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200 {object} models.Class
// @Failure      404 {object} map[string]string
// @Router       /classes/{id} [get]
func GetClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	class, err := db.GetClassByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch class"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListClassesByTeacher godoc
// @Summary      List the classes owned by a teacher
// @Description  Owner or admin only
// @Tags         classes
// @Produce      json
// @Param        email  path  string  true  "Owner email"
// @Success      200 {array} models.Class
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/teacher/{email} [get]
func ListClassesByTeacher(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	classes, err := db.ListClassesByTeacher(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ApproveClass godoc
// @Summary      Approve a pending class
// @Tags         classes
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/{id}/approve [patch]
func ApproveClass(c *gin.Context) {
	setClassStatus(c, models.ClassStatusApproved)
}

// RejectClass godoc
// @Summary      Reject a pending class
// @Tags         classes
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/{id}/reject [patch]
func RejectClass(c *gin.Context) {
	setClassStatus(c, models.ClassStatusRejected)
}

func setClassStatus(c *gin.Context, status models.ClassStatus) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	if err := db.SetClassStatus(context.Background(), id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class " + string(status)})
}

// classPatchFields is the set of columns a patch may touch. Identifier,
// owner and counter fields are silently dropped.
var classPatchFields = map[string]bool{
	"title":       true,
	"name":        true,
	"price":       true,
	"description": true,
	"image":       true,
	"status":      true,
}

// UpdateClass godoc
// @Summary      Update a class
// @Description  Owner or admin only; unknown and identity fields are ignored
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "Class ID"
// @Param        body  body  map[string]interface{}  true  "Fields to merge"
// @Success      200   {object} map[string]string
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Failure      404   {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/{id} [patch]
func UpdateClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	class, err := db.GetClassByID(context.Background(), id)
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

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patch := make(map[string]interface{})
	for k, v := range body {
		if classPatchFields[k] {
			patch[k] = v
		}
	}
	if s, ok := patch["status"]; ok {
		status, isStr := s.(string)
		if !isStr || (models.ClassStatus(status) != models.ClassStatusPending &&
			models.ClassStatus(status) != models.ClassStatusApproved &&
			models.ClassStatus(status) != models.ClassStatusRejected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
	}
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.UpdateClass(context.Background(), id, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class updated"})
}

// DeleteClass godoc
// @Summary      Delete a class
// @Description  Owner or admin only
// @Tags         classes
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /classes/{id} [delete]
func DeleteClass(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	class, err := db.GetClassByID(context.Background(), id)
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

	if err := db.DeleteClass(context.Background(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}
