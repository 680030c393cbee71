package order

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(ctx.Request.Context(), userID, req.Items)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) List(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	status := ctx.Query("status")

	res, err := h.service.List(ctx.Request.Context(), userID, status)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Detail(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Detail(ctx.Request.Context(), userID, ctx.Param("orderId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}
