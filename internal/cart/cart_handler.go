package cart

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

func (h *Handler) Detail(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Detail(ctx.Request.Context(), userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.AddItem(ctx.Request.Context(), userID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateQty(ctx.Request.Context(), userID, ctx.Param("productId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.RemoveItem(ctx.Request.Context(), userID, ctx.Param("productId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Clear(ctx.Request.Context(), userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}
