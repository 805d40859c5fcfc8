package menu

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Category    string  `json:"category" binding:"required,oneof=MAIN SIDE DRINK DESSERT"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Description *string `json:"description"`
}

type UpdateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Category    string  `json:"category" binding:"required,oneof=MAIN SIDE DRINK DESSERT"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Description *string `json:"description"`
	IsAvailable *bool   `json:"is_available"`
}

type ListMenuFilter struct {
	Category  string `form:"category"`
	Available *bool  `form:"available"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       int64   `json:"price"`
	Description *string `json:"description,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

// MenuOption is the slim shape served to order-taking clients.
type MenuOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
