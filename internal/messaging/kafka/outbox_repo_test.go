package kafka

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() OutboxEvent {
	return OutboxEvent{
		ID:            "4d3f2b9c-0c1a-4f6e-9f1d-8a7b6c5d4e3f",
		RequestID:     "req-1",
		AggregateType: "attendance",
		AggregateID:   "a-1",
		EventType:     "attendance_approved",
		Topic:         "quanan.attendance.approved.v1",
		Payload:       []byte(`{"attendance_id":"a-1"}`),
		Status:        OutboxStatusPending,
	}
}

func TestValidateOutboxEventRejectsIncompleteRows(t *testing.T) {
	assert.NoError(t, ValidateOutboxEvent(validEvent()))

	missingAggregate := validEvent()
	missingAggregate.AggregateID = ""
	assert.Error(t, ValidateOutboxEvent(missingAggregate))

	missingTopic := validEvent()
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxCreateRidesCallerTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewOutboxRepository(db)
	require.NoError(t, repo.WithTx(tx).Create(context.Background(), validEvent()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxCreateRejectsInvalidEventBeforeInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewOutboxRepository(db)
	incomplete := validEvent()
	incomplete.Payload = nil

	assert.Error(t, repo.Create(context.Background(), incomplete))
	require.NoError(t, mock.ExpectationsWereMet())
}
