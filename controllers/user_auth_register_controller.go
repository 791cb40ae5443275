package controllers

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// RegistrationData is the pending registration held in the session until the
// e-mailed code is verified
type RegistrationData struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	OTP        string `json:"otp"`
	OTPExpires int64  `json:"otp_expires"`
}

// RegisterUser validates the signup payload, stashes it in the session and
// e-mails a verification code. The account row is only created on OTP verify.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}
	utils.LogInfo("Registration attempt for email: %s, username: %s", req.Email, req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration failed - invalid username: %s", req.Username)
		utils.BadRequest(c, msg, nil)
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Registration failed - invalid email: %s", req.Email)
		utils.BadRequest(c, msg, nil)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration failed - weak password for email: %s", req.Email)
		utils.BadRequest(c, msg, nil)
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.LogError("Registration failed - passwords do not match for email: %s", req.Email)
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - account already exists: %s", req.Email)
		utils.Conflict(c, "An account with this email or username already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Registration failed - could not hash password: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	otp := utils.GenerateOTP()
	data := RegistrationData{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		OTP:        otp,
		OTPExpires: time.Now().Add(15 * time.Minute).Unix(),
	}

	session := sessions.Default(c)
	session.Set("registration", data)
	if err := session.Save(); err != nil {
		utils.LogError("Registration failed - could not save session: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Registration failed - could not send OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send verification email", err)
		return
	}

	utils.LogInfo("Registration OTP sent to: %s", req.Email)
	utils.Success(c, gin.H{
		"message":    "Verification code sent. Check your email to complete registration.",
		"expires_in": 15 * 60,
	})
}

// VerifyOTPRequest represents the OTP verification request body
type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// VerifyOTP completes registration by checking the e-mailed code against the
// session and creating the account
func VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("OTP verification failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	session := sessions.Default(c)
	raw := session.Get("registration")
	if raw == nil {
		utils.LogError("OTP verification failed - no pending registration in session")
		utils.BadRequest(c, "Session expired. Please register again.", nil)
		return
	}
	data, ok := raw.(RegistrationData)
	if !ok {
		utils.LogError("OTP verification failed - malformed session data")
		utils.BadRequest(c, "Session expired. Please register again.", nil)
		return
	}
	utils.LogInfo("OTP verification attempt for email: %s", data.Email)

	if time.Now().Unix() > data.OTPExpires {
		utils.LogError("OTP verification failed - code expired for: %s", data.Email)
		utils.BadRequest(c, "Verification code expired. Please register again.", nil)
		return
	}
	if data.OTP != req.OTP {
		utils.LogError("OTP verification failed - wrong code for: %s", data.Email)
		utils.BadRequest(c, "The code you entered is incorrect", nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", data.Email).First(&existing).Error; err == nil {
		utils.LogError("OTP verification failed - user already exists: %s", data.Email)
		utils.Conflict(c, "An account with this email already exists. Please login.", nil)
		return
	}

	user := models.User{
		Username:   data.Username,
		Email:      data.Email,
		Password:   data.Password,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user account for %s: %v", data.Email, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	session.Delete("registration")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear registration session for %s: %v", data.Email, err)
	}

	utils.LogInfo("User registration completed: %s", data.Email)
	utils.Created(c, gin.H{
		"message": "Email verified and registration completed. Please login.",
	})
}
