package order

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
)

var (
	ErrEmptyOrder = apperror.New(
		apperror.CodeValidation,
		"Order must contain at least one item",
		http.StatusBadRequest,
	)

	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidation,
		"Unknown order status filter",
		http.StatusBadRequest,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeValidation,
		"Order id is required",
		http.StatusBadRequest,
	)
)
