package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Body is stored as-is; feedback is append-only
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Success      201 {object} models.Feedback
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /feedback [post]
func SubmitFeedback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	feedback := models.Feedback{
		Email: c.GetString("email"),
		Body:  datatypes.JSON(body),
	}
	if err := db.CreateFeedback(context.Background(), &feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback godoc
// @Summary      List feedback
// @Tags         feedback
// @Produce      json
// @Success      200 {array} models.Feedback
// @Router       /feedback [get]
func ListFeedback(c *gin.Context) {
	feedback, err := db.ListFeedback(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
