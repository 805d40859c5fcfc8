package salaryerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"Salary record is already paid",
		http.StatusConflict,
	)
	ErrSalaryNotPaid = apperror.New(
		apperror.CodeInvalidState,
		"Salary record is not paid",
		http.StatusConflict,
	)
	ErrRecordPaidRecomputeForbidden = apperror.New(
		apperror.CodeInvalidState,
		"Cannot recompute a paid salary record, reopen it first",
		http.StatusConflict,
	)
	ErrAttendanceNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"Attendance is not approved",
		http.StatusConflict,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
)
