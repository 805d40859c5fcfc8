package promotionerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrPromotionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Promotion not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Promotion end must be after its start",
		http.StatusBadRequest,
	)
)
