package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects to Google's consent screen
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, provisions the account on first
// login and returns a regular JWT
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Google OAuth exchange failed: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", err)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.InternalServerError(c, "Failed to get user info", err)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err)
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		// First Google login provisions an account without a password
		user = models.User{
			Username:   fmt.Sprintf("g_%s", googleUser.ID),
			Email:      googleUser.Email,
			FirstName:  googleUser.GivenName,
			LastName:   googleUser.FamilyName,
			AvatarURL:  googleUser.Picture,
			GoogleID:   googleUser.ID,
			IsVerified: googleUser.VerifiedEmail,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to provision Google account for %s: %v", googleUser.Email, err)
			utils.InternalServerError(c, "Internal server error", err)
			return
		}
		utils.LogInfo("Provisioned new account via Google login: %s", googleUser.Email)
	} else if user.GoogleID == "" {
		user.GoogleID = googleUser.ID
		if err := config.DB.Save(&user).Error; err != nil {
			utils.LogError("Failed to link Google account for %s: %v", user.Email, err)
		}
	}

	if user.IsBlocked {
		utils.LogError("Blocked account attempted Google login: %s", user.Email)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login for %s: %v", user.Email, err)
	}

	jwtToken, err := utils.GenerateUserToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("User logged in via Google: %s", user.Email)
	utils.Success(c, gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
