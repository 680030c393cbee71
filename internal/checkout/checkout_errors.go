package checkout

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeValidation,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrCheckoutInProgress = apperror.New(
		apperror.CodeConflict,
		"A checkout is already in progress",
		http.StatusConflict,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeValidation,
		"Order id is required",
		http.StatusBadRequest,
	)
)
