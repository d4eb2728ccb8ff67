package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

// TokenRequest is the identity payload for token issuance.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenHandler godoc
// @Summary      Issue an identity token
// @Description  Signs a one-hour token for the given email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  TokenRequest  true  "Identity"
// @Success      200   {object} map[string]string
// @Failure      400   {object} map[string]string
// @Router       /jwt [post]
func TokenHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		// Role is a best-effort snapshot; guards re-check the directory.
		role := models.Role("")
		user, err := db.GetUserByEmail(context.Background(), req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		if user != nil {
			role = user.Role
		}

		token, err := IssueToken(cfg, req.Email, role)
		if err != nil {
			log.Error().Err(err).Msg("token signing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
