package reviewerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var ErrReviewNotFound = apperror.New(
	apperror.CodeNotFound,
	"Review not found",
	http.StatusNotFound,
)
