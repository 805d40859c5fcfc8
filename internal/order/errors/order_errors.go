package ordererrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)
	ErrTableNotFound = apperror.New(
		apperror.CodeNotFound,
		"Table not found",
		http.StatusNotFound,
	)
	ErrTableNumberTaken = apperror.New(
		apperror.CodeConflict,
		"A table with this number already exists",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Order status transition not allowed",
		http.StatusConflict,
	)
)
