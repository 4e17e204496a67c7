package handlers

import (
	"net/http"

	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	secureCookie bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/check", h.Check)
	}
}

// Login returns the session token and also sets it as an http-only cookie
// for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token, h.authService.SessionMaxAge())
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if admin := middleware.GetAdmin(c); admin != nil {
		logger.CtxInfo(c.Request.Context(), "admin logged out", "username", admin.Username)
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, messageResponse("Logout successful"))
}

func (h *AuthHandler) Check(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		c.JSON(http.StatusOK, dto.AuthStatusResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, dto.AuthStatusResponse{Authenticated: true, Username: admin.Username})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.secureCookie, true)
}
