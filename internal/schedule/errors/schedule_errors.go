package scheduleerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift assignment not found",
		http.StatusNotFound,
	)

	ErrAssignmentExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has a shift assignment on this date",
		http.StatusConflict,
	)

	ErrInvalidWorkDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
