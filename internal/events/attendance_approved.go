package events

import "time"

const AttendanceApprovedTopic = "quanan.attendance.approved.v1"

// AttendanceApprovedEvent triggers payroll reconciliation for the month the
// attendance falls in.
type AttendanceApprovedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	AttendanceID string    `json:"attendance_id"`
	EmployeeID   string    `json:"employee_id"`
	WorkDate     string    `json:"work_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}
