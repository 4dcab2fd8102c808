package dto

type AddWishlistItemRequest struct {
	Name  string  `json:"name"`
	Link  string  `json:"link,omitempty"`
	Price float64 `json:"price"`
}

// AcquireRequest converts a wishlist item into an acquisition. Date defaults
// to today when omitted.
type AcquireRequest struct {
	Date string `json:"date,omitempty"`
}
