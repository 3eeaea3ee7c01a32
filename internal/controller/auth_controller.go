package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Students are approved immediately, teachers wait for an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Registration data"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.AuthService.Register(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "Registration successful. Waiting for approval if teacher.", gin.H{
		"id":         user.ID,
		"role":       user.Role,
		"isApproved": user.IsApproved,
	})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 400 {object} util.Response "invalid_credentials"
// @Failure 401 {object} util.Response "pending_approval"
// @Router /api/users/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.AuthService.Login(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Login successful", resp)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ForgotPasswordRequest true "Account email"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if req.Email == "" {
		util.BadRequest(ctx, "Email is required")
		return
	}

	if err := c.AuthService.ForgotPassword(ctx.Request.Context(), req.Email); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Reset password link sent to your email.", nil)
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword godoc
// @Summary Reset the password with an emailed token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param body body ResetPasswordRequest true "New password"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/users/reset-password/{token} [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.AuthService.ResetPassword(ctx.Request.Context(), ctx.Param("token"), req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Password reset successful", nil)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/users/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	util.Success(ctx, user)
}
