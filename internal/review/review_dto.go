package review

type CreateReviewRequest struct {
	MenuItemID   string  `json:"menu_item_id" binding:"required,uuid"`
	CustomerName string  `json:"customer_name" binding:"required,max=255"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Comment      *string `json:"comment"`
}

type ModerateReviewRequest struct {
	Hidden bool `json:"hidden"`
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	MenuItemID   string  `json:"menu_item_id"`
	CustomerName string  `json:"customer_name"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment,omitempty"`
	IsHidden     bool    `json:"is_hidden"`
	CreatedAt    string  `json:"created_at"`
}
