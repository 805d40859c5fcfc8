package order

type CreateTableRequest struct {
	Number int `json:"number" binding:"required,min=1"`
	Seats  int `json:"seats" binding:"required,min=1"`
}

type TableResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Seats  int    `json:"seats"`
}

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	TableID string             `json:"table_id" binding:"required,uuid"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes   *string            `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PREPARING SERVED PAID CANCELLED"`
}

type ListOrderFilter struct {
	TableID  string `form:"table_id"`
	WaiterID string `form:"waiter_id"`
	Status   string `form:"status"`
}

type OrderItemResponse struct {
	ID              string  `json:"id"`
	MenuItemID      string  `json:"menu_item_id"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       int64   `json:"unit_price"`
	DiscountPercent int     `json:"discount_percent"`
	PromotionID     *string `json:"promotion_id,omitempty"`
	LineTotal       int64   `json:"line_total"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	TableID     string              `json:"table_id"`
	WaiterID    string              `json:"waiter_id"`
	Status      string              `json:"status"`
	Subtotal    int64               `json:"subtotal"`
	Discount    int64               `json:"discount"`
	Total       int64               `json:"total"`
	Notes       *string             `json:"notes,omitempty"`
	PaidAt      *string             `json:"paid_at,omitempty"`
	Items       []OrderItemResponse `json:"items"`
}
