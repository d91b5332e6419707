package models

// CartItem is a product plus the number of units in the cart. Quantity is always >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}
