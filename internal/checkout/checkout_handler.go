package checkout

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

func (h *Handler) Start(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req StartRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
			return
		}
	}

	res, err := h.manager.For(userID).Start(ctx.Request.Context(), req.Provider)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) PayNow(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req PayNowRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
			return
		}
	}

	res, err := h.manager.For(userID).PayNow(ctx.Request.Context(), ctx.Param("orderId"), req.Provider)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Status(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	response.Success(ctx, http.StatusOK, h.manager.For(userID).Status())
}
