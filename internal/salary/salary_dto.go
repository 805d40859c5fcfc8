package salary

type UpsertSalaryRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
	Bonus      *int64 `json:"bonus" binding:"omitempty,min=0"`
	Deduction  *int64 `json:"deduction" binding:"omitempty,min=0"`
}

type BatchGenerateRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type ListSalaryFilter struct {
	EmployeeID string `form:"employee_id"`
	Month      int    `form:"month"`
	Year       int    `form:"year"`
	Status     string `form:"status"`
}

type SalaryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalHours     float64 `json:"total_hours"`
	TotalHourlyPay int64   `json:"total_hourly_pay"`
	Bonus          int64   `json:"bonus"`
	Deduction      int64   `json:"deduction"`
	NetPay         int64   `json:"net_pay"`
	WorkingDays    int     `json:"working_days"`
	Status         string  `json:"status"`
	PaidAt         *string `json:"paid_at,omitempty"`
}

type DailyDetailResponse struct {
	ID           string  `json:"id"`
	AttendanceID *string `json:"attendance_id,omitempty"`
	WorkDate     string  `json:"work_date"`
	Shift        string  `json:"shift"`
	WageRateID   *string `json:"wage_rate_id,omitempty"`
	HoursWorked  float64 `json:"hours_worked"`
	Amount       int64   `json:"amount"`
}

type BatchGenerateResponse struct {
	Month   int `json:"month"`
	Year    int `json:"year"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
