package attendanceerrors

import (
	"net/http"

	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Already clocked in for today",
		http.StatusConflict,
	)

	ErrClockInNotFound = apperror.New(
		apperror.CodeNotFound,
		"No clock-in found for today",
		http.StatusNotFound,
	)

	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"Already clocked out for today",
		http.StatusConflict,
	)

	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending attendance can be approved or rejected",
		http.StatusUnprocessableEntity,
	)

	ErrNotClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"Attendance cannot be approved before clock-out",
		http.StatusUnprocessableEntity,
	)
)
