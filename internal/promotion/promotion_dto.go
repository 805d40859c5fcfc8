package promotion

type CreatePromotionRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	MenuItemID      string `json:"menu_item_id" binding:"required,uuid"`
	DiscountPercent int    `json:"discount_percent" binding:"required,min=1,max=100"`
	StartsAt        string `json:"starts_at" binding:"required"`
	EndsAt          string `json:"ends_at" binding:"required"`
}

type ListPromotionFilter struct {
	MenuItemID string `form:"menu_item_id"`
	Active     *bool  `form:"active"`
}

type PromotionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MenuItemID      string `json:"menu_item_id"`
	DiscountPercent int    `json:"discount_percent"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	IsActive        bool   `json:"is_active"`
}
