package product

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeValidation,
		"Product id is required",
		http.StatusBadRequest,
	)

	ErrImageRequired = apperror.New(
		apperror.CodeValidation,
		"Image file is required",
		http.StatusBadRequest,
	)
)
