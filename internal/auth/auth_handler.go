package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"
)

type Handler struct {
	service   Service
	cookieTTL int
	logger    *zap.Logger
}

func NewHandler(s Service, cookieTTL int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: s, cookieTTL: cookieTTL, logger: logger.Named("auth.handler")}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setCookie(c, token, h.cookieTTL)
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	token, user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setCookie(c, token, h.cookieTTL)
	response.Success(c, http.StatusCreated, user)
}

func (h *Handler) Logout(c *gin.Context) {
	if sid := c.GetString("session_id"); sid != "" {
		if err := h.service.Logout(c.Request.Context(), sid); err != nil {
			h.logger.Warn("failed to drop session", zap.Error(err))
		}
	}

	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *Handler) setCookie(c *gin.Context, token string, maxAge int) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}
