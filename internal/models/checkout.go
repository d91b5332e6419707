package models

type CheckoutState string

const (
	CheckoutStateIdle                  CheckoutState = "idle"
	CheckoutStateCollectingInput       CheckoutState = "collecting_input"
	CheckoutStateAwaitingAuthorization CheckoutState = "awaiting_authorization"
	CheckoutStateSucceeded             CheckoutState = "succeeded"
	CheckoutStateFailed                CheckoutState = "failed"
)

type ShippingDetails struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	ZIP       string `json:"zip" validate:"required"`
}

// CheckoutRequest is the submitted checkout form. PaymentMethod is the
// reference produced by the embedded payment widget; raw card data never
// reaches this service.
type CheckoutRequest struct {
	Shipping      ShippingDetails `json:"shipping" validate:"required"`
	PaymentMethod string          `json:"payment_method"`
}

type CheckoutStatus struct {
	State   CheckoutState `json:"state"`
	Error   string        `json:"error,omitempty"`
	OrderID string        `json:"order_id,omitempty"`
	Total   float64       `json:"total"`
}
