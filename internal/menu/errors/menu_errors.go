package menuerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrMenuItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Menu item not found",
		http.StatusNotFound,
	)
	ErrMenuItemNameTaken = apperror.New(
		apperror.CodeConflict,
		"A menu item with this name already exists",
		http.StatusConflict,
	)
	ErrMenuItemUnavailable = apperror.New(
		apperror.CodeInvalidState,
		"Menu item is not available",
		http.StatusConflict,
	)
)
