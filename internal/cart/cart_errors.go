package cart

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeValidation,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeValidation,
		"Product id is required",
		http.StatusBadRequest,
	)
)

func mapValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidProductID
	}
	for _, fe := range verrs {
		if fe.Field() == "Qty" {
			return ErrInvalidQty
		}
	}
	return ErrInvalidProductID
}
