package wagerate

type CreateWageRateRequest struct {
	Role          string `json:"role" binding:"required,oneof=waiter kitchen admin"`
	Shift         string `json:"shift" binding:"required,oneof=MORNING EVENING NIGHT"`
	HourlyRate    int64  `json:"hourly_rate" binding:"required,gt=0"`
	EffectiveDate string `json:"effective_date" binding:"required,datetime=2006-01-02"`
}

type ListWageRateFilter struct {
	Role   string `form:"role"`
	Shift  string `form:"shift"`
	Active *bool  `form:"active"`
}

type WageRateResponse struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	Shift         string `json:"shift"`
	HourlyRate    int64  `json:"hourly_rate"`
	EffectiveDate string `json:"effective_date"`
	IsActive      bool   `json:"is_active"`
}
