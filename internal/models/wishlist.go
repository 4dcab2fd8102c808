package models

import (
	"time"
)

type WishlistItem struct {
	ItemID    string    `firestore:"itemId" json:"itemId"`
	Name      string    `firestore:"name" json:"name"`
	Link      string    `firestore:"link" json:"link,omitempty"`
	Price     float64   `firestore:"price" json:"price"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// Acquisition is a wishlist item that was actually purchased. It lives in its
// own collection and is never merged into transactions.
type Acquisition struct {
	AcquisitionID string    `firestore:"acquisitionId" json:"acquisitionId"`
	Name          string    `firestore:"name" json:"name"`
	Link          string    `firestore:"link" json:"link,omitempty"`
	Price         float64   `firestore:"price" json:"price"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD purchase date
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
}
