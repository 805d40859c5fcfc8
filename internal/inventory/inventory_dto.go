package inventory

type CreateIngredientRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Unit         string  `json:"unit" binding:"required,max=20"`
	ReorderLevel float64 `json:"reorder_level" binding:"omitempty,min=0"`
}

type CreateSupplierRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type RecordMovementRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	SupplierID   *string `json:"supplier_id" binding:"omitempty,uuid"`
	Type         string  `json:"type" binding:"required,oneof=RECEIPT USAGE"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost     *int64  `json:"unit_cost" binding:"omitempty,gt=0"`
	Notes        *string `json:"notes"`
}

type IngredientResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	StockQty     float64 `json:"stock_qty"`
	ReorderLevel float64 `json:"reorder_level"`
}

type SupplierResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type MovementResponse struct {
	ID           string  `json:"id"`
	IngredientID string  `json:"ingredient_id"`
	SupplierID   *string `json:"supplier_id,omitempty"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	UnitCost     *int64  `json:"unit_cost,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
