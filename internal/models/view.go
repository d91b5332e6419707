package models

type ViewName string

const (
	ViewHome          ViewName = "home"
	ViewShop          ViewName = "shop"
	ViewCategories    ViewName = "categories"
	ViewProductDetail ViewName = "product-detail"
	ViewCart          ViewName = "cart"
	ViewCheckout      ViewName = "checkout"
	ViewLogin         ViewName = "login"
	ViewAdmin         ViewName = "admin"
	ViewProfile       ViewName = "profile"
)

type NavigateRequest struct {
	View      string `json:"view" validate:"required"`
	ProductID string `json:"product_id,omitempty"`
	Filter    string `json:"filter,omitempty"`
}

type ViewResponse struct {
	View    ViewName `json:"view"`
	Filter  string   `json:"filter,omitempty"`
	Product *Product `json:"product,omitempty"`
}
