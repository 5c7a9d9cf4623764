package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lalindra-code/clearBillCopy/internal/middleware"
	"github.com/lalindra-code/clearBillCopy/internal/service"
	"github.com/lalindra-code/clearBillCopy/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the auth endpoints.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.GetMe)
	}
}

// signInPayload covers both providers: credentials carry
// email/password, Google carries a verified ID token.
type signInPayload struct {
	Provider   string `json:"provider"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	IDToken    string `json:"idToken"`
	RememberMe bool   `json:"rememberMe"`
}

// SignUp registers a password account
// @Summary      Sign up
// @Description  Creates an account with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SignUpRequest  true  "Signup Payload"
// @Success      201      {object}  response.Body
// @Failure      400      {object}  response.Body
// @Failure      409      {object}  response.Body
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("All fields are required"))
		return
	}

	err := h.authService.SignUp(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, response.Message("Account created"))
	case errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, response.Message(err.Error()))
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, response.Message(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Message("Something went wrong. Please try again."))
	}
}

// SignIn authenticates with credentials or a Google ID token
// @Summary      Sign in
// @Description  Issues a session token; rememberMe extends the session to 30 days
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      signInPayload  true  "Sign-in Payload"
// @Success      200      {object}  service.SessionResponse
// @Failure      400      {object}  response.Body
// @Failure      401      {object}  response.Body
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload signInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload"))
		return
	}

	var (
		session *service.SessionResponse
		err     error
	)
	if payload.Provider == "google" || payload.IDToken != "" {
		session, err = h.authService.SignInWithGoogle(c.Request.Context(), service.GoogleSignInRequest{
			IDToken:    payload.IDToken,
			RememberMe: payload.RememberMe,
		})
	} else {
		if payload.Email == "" || payload.Password == "" {
			c.JSON(http.StatusBadRequest, response.Error("Email and password are required"))
			return
		}
		session, err = h.authService.SignInWithPassword(c.Request.Context(), service.SignInRequest{
			Email:      payload.Email,
			Password:   payload.Password,
			RememberMe: payload.RememberMe,
		})
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(service.ErrInvalidCredentials.Error()))
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	middleware.SetSessionCookie(c, session.Token, maxAge)

	c.JSON(http.StatusOK, session)
}

// ForgotPassword requests a reset link
// @Summary      Forgot password
// @Description  Always answers with the same message, whether or not the account exists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      object{email=string}  true  "Email"
// @Success      200      {object}  response.Body
// @Failure      400      {object}  response.Body
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Email is required"))
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, response.Message("Something went wrong. Please try again."))
		return
	}

	c.JSON(http.StatusOK, response.Message(service.ForgotPasswordMessage))
}

// ResetPassword replaces the password using a reset token
// @Summary      Reset password
// @Description  Consumes a single-use reset token and sets the new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ResetPasswordRequest  true  "Reset Payload"
// @Success      200      {object}  response.Body
// @Failure      400      {object}  response.Body
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Message("Reset token is missing"))
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.Message("Password reset successfully"))
	case errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, response.Message(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Message("Something went wrong. Please try again."))
	}
}

// GetMe returns the current session identity
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.SessionUser
// @Failure      401  {object}  response.Body
// @Router       /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response.Error("No session"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error("User not found"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Body
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, response.Message("Signed out"))
}
