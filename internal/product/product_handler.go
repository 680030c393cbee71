package product

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"
)

const maxImageSize = 5 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(ctx *gin.Context) {
	res, err := h.service.List(ctx.Request.Context())
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Detail(ctx *gin.Context) {
	res, err := h.service.Detail(ctx.Request.Context(), ctx.Param("productId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Update(ctx.Request.Context(), ctx.Param("productId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx.Request.Context(), ctx.Param("productId")); err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		response.FromError(ctx, ErrImageRequired)
		return
	}
	if fileHeader.Size > maxImageSize {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Image must be 5MB or smaller", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "VALIDATION_ERROR", "Could not read uploaded file", err.Error())
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	name := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
	filename := name + "-" + uuid.New().String()[:8]

	url, err := h.service.UploadImage(ctx.Request.Context(), file, filename)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, gin.H{"imageUrl": url})
}
