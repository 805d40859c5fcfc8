package schedule

type AssignShiftRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	WorkDate   string  `json:"work_date" binding:"required"`
	Shift      string  `json:"shift" binding:"required,oneof=MORNING EVENING NIGHT"`
	Note       *string `json:"note"`
}

type AssignmentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	Shift      string  `json:"shift"`
	Note       *string `json:"note,omitempty"`
	CreatedBy  string  `json:"created_by"`
}

type ListAssignmentsFilter struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
}
