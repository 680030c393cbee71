package payment

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID = apperror.New(
		apperror.CodeValidation,
		"Order id is required",
		http.StatusBadRequest,
	)

	ErrOrderAlreadyPaid = apperror.New(
		apperror.CodeConflict,
		"Order has already been paid",
		http.StatusConflict,
	)

	ErrUnknownProvider = apperror.New(
		apperror.CodeValidation,
		"Unknown payment provider",
		http.StatusBadRequest,
	)
)
