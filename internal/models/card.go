package models

import (
	"time"
)

type Card struct {
	CardID    string    `firestore:"cardId" json:"cardId"`
	Name      string    `firestore:"name" json:"name"`
	Limit     float64   `firestore:"limit" json:"limit"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
