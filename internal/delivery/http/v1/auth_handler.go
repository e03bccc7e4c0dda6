package v1

import (
	"net/http"
	"time"

	"go-profile-backend/config"
	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
	}

	// Public Routes. Credential endpoints carry stricter per-IP limits,
	// tunable through the rate-limit env settings.
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", middleware.StrictRateLimitMiddleware(), handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/verify-email", middleware.StrictRateLimitMiddleware(), handler.VerifyEmail)
		publicAuth.POST("/validate-google-token", loginLimiter, handler.ValidateGoogleToken)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	VerificationCode string `json:"verification_code" binding:"required,len=6"`
}

type GoogleTokenRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with name, email and password. Sends a verification code by email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful. Please check your email for the verification code.", user)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password. Returns an access token and the user's profiles.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// VerifyEmail godoc
// @Summary      Verify Email
// @Description  Confirm a registration with the 6-digit code sent by email. Returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyEmailRequest  true  "Email and verification code"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.VerifyEmail(c.Request.Context(), req.Email, req.VerificationCode)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email verified successfully", result)
}

// ValidateGoogleToken godoc
// @Summary      Google Sign-In
// @Description  Exchange a Google access token for a local session. Creates the account on first login.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      GoogleTokenRequest  true  "Google access token"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/validate-google-token [post]
func (h *AuthHandler) ValidateGoogleToken(c *gin.Context) {
	var req GoogleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.FederatedLogin(c.Request.Context(), req.AccessToken)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current User
// @Description  Return the authenticated user's account details
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}
