package attendance

type ClockInRequest struct {
	Notes *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type AdjustHoursRequest struct {
	HoursWorked float64 `json:"hours_worked" binding:"required,gt=0"`
}

type RejectRequest struct {
	Reason *string `json:"reason"`
}

type ListAttendanceFilter struct {
	EmployeeID string `form:"employee_id"`
	Month      int    `form:"month"`
	Year       int    `form:"year"`
	Status     string `form:"status"`
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	WorkDate    string  `json:"work_date"`
	Shift       string  `json:"shift"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    *string `json:"clock_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
	Late        bool    `json:"late"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
}
