package inventoryerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrIngredientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ingredient not found",
		http.StatusNotFound,
	)
	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supplier not found",
		http.StatusNotFound,
	)
	ErrIngredientNameTaken = apperror.New(
		apperror.CodeConflict,
		"An ingredient with this name already exists",
		http.StatusConflict,
	)
	ErrInsufficientStock = apperror.New(
		apperror.CodeInvalidState,
		"Not enough stock for this usage",
		http.StatusConflict,
	)
	ErrReceiptRequiresSupplier = apperror.New(
		apperror.CodeInvalidInput,
		"A receipt movement requires a supplier and unit cost",
		http.StatusBadRequest,
	)
)
