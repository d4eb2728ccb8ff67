package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

var googleOauthConfig *oauth2.Config

func InitGoogle(cfg *config.Config) {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  cfg.GoogleRedirectURL,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleSecret,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLoginHandler godoc
// @Summary      Login with Google
// @Description  Redirects to the Google consent screen
// @Tags         auth
// @Produce      json
// @Success      307 {string} string "redirect"
// @Router       /auth/google/login [get]
func GoogleLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := googleOauthConfig.AuthCodeURL("state")
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// GoogleCallbackHandler godoc
// @Summary      Google callback
// @Description  Exchanges the code, registers the account and returns a token
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /auth/google/callback [get]
func GoogleCallbackHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		token, err := googleOauthConfig.Exchange(context.Background(), code)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to exchange token"})
			return
		}

		resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get user info"})
			return
		}
		defer resp.Body.Close()

		var userInfo struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse user info"})
			return
		}

		// First sign-in registers the account; later ones are no-ops.
		if _, _, err := db.RegisterUser(context.Background(), userInfo.Email, models.RoleNormal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}

		user, err := db.GetUserByEmail(context.Background(), userInfo.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		signed, err := IssueToken(cfg, user.Email, user.Role)
		if err != nil {
			log.Error().Err(err).Msg("token signing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": signed,
			"email": user.Email,
		})
	}
}
