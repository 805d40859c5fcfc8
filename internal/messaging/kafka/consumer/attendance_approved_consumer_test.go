package consumer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	salaryerrors "github.com/Bang334/QuanAn-sub002/internal/salary/errors"
	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

func TestRetryableClassifiesReconcileErrors(t *testing.T) {
	// Business rejections are final; redelivering them would loop forever.
	assert.False(t, retryable(salaryerrors.ErrRecordPaidRecomputeForbidden))
	assert.False(t, retryable(salaryerrors.ErrAttendanceNotFound))
	assert.False(t, retryable(salaryerrors.ErrAttendanceNotApproved))

	// Infrastructure failures may clear up on redelivery.
	assert.True(t, retryable(errors.New("dial tcp: connection refused")))
	assert.True(t, retryable(apperror.New(apperror.CodeInternalError, "reconcile failed", http.StatusInternalServerError)))
}
