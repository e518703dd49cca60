package service

import (
	"errors"
	"fmt"

	apperrors "product-relations-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationFailed turns validator output into an apperrors.ValidationError
// naming the first offending field.
func validationFailed(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}
