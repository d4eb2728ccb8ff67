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

// RegisterUserRequest is the request body for account registration.
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterUser godoc
// @Summary      Register an account
// @Description  Idempotent: a repeated email returns the existing account id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterUserRequest  true  "Account info"
// @Success      200   {object} map[string]interface{}
// @Success      201   {object} map[string]interface{}
// @Failure      400   {object} map[string]string
// @Router       /users [post]
func RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, created, err := db.RegisterUser(context.Background(), req.Email, models.RoleNormal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"insertedId": id})
}

// ListUsers godoc
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /users [get]
func ListUsers(c *gin.Context) {
	users, err := db.ListUsers(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Description  Permanent; owned classes and payments are not cascaded
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := db.DeleteUser(context.Background(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// UpdateUserRoleRequest is the request body for role changes.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole godoc
// @Summary      Change an account's role
// @Description  Role must be one of normal, teacher, admin
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "User ID"
// @Param        body  body  UpdateUserRoleRequest  true  "New role"
// @Success      200   {object} map[string]string
// @Failure      400   {object} map[string]string
// @Failure      404   {object} map[string]string
// @Security     BearerAuth
// @Router       /users/{id}/role [patch]
func UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	if err := db.SetUserRole(context.Background(), id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// CheckAdmin godoc
// @Summary      Check whether an email is an admin
// @Description  Callers may only ask about themselves; admins may ask about anyone
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200 {object} map[string]bool
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /users/admin/{email} [get]
func CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	admin, err := db.IsAdmin(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// CheckTeacher godoc
// @Summary      Check whether an email is a teacher
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200 {object} map[string]bool
// @Failure      403 {object} map[string]string
// @Security     BearerAuth
// @Router       /users/teacher/{email} [get]
func CheckTeacher(c *gin.Context) {
	email := c.Param("email")
	if !callerAllowed(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	teacher, err := db.IsTeacher(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": teacher})
}
