package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// GuestUserID marks orders placed without a logged in user.
const GuestUserID = "guest"

// Order is written once at checkout. Items and Total are a snapshot of the
// cart at that moment and are never recomputed.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	Items  []CartItem  `json:"items"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
	Date   string      `json:"date"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type AdminOrdersResponse struct {
	Orders  []Order `json:"orders"`
	Count   int     `json:"count"`
	Pending int     `json:"pending"`
	Revenue float64 `json:"revenue"`
}
