package wagerateerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrWageRateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Wage rate not found",
		http.StatusNotFound,
	)
	ErrMissingRateConfiguration = apperror.New(
		apperror.CodeMissingRateConfiguration,
		"No wage rate configured for this role and shift",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Effective date must be a valid date",
		http.StatusBadRequest,
	)
)
