package models

import "time"

type WishlistEntry struct {
	Product
	AddedAt time.Time `json:"added_at"`
}

type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}
