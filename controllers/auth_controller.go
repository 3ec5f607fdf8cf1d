package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

type AuthController struct {
	UserSvc   *services.UserService
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(userSvc *services.UserService, jwtSecret string) *AuthController {
	return &AuthController{UserSvc: userSvc, JWTSecret: jwtSecret, TokenTTL: 12 * time.Hour}
}

type registerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "email and password are required", err)
		return
	}

	user, err := ctrl.UserSvc.Register(payload.FullName, payload.Email, payload.Password, strings.ToUpper(payload.Role))
	if err != nil {
		if strings.Contains(err.Error(), "email_taken") {
			utils.JSONError(c, http.StatusConflict, "error.emailTaken", "email is already registered")
			return
		}
		if strings.Contains(err.Error(), "validation") {
			utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "invalid registration data", err)
			return
		}
		log.Printf("Register error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to register user")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

// POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "email and password are required", err)
		return
	}

	user, err := ctrl.UserSvc.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid_credentials") {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid email or password")
			return
		}
		log.Printf("Login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "login failed")
		return
	}

	token, err := utils.NewAccessToken(ctrl.JWTSecret, user.ID, user.Role, ctrl.TokenTTL)
	if err != nil {
		log.Printf("Login token error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":     token.Token,
		"expiresAt": token.Exp,
		"user":      user,
	})
}
