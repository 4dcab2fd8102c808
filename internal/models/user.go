package models

import (
	"time"
)

// Categories holds the user's ordered category lists per transaction type.
type Categories struct {
	Income  []string `firestore:"income" json:"income"`
	Expense []string `firestore:"expense" json:"expense"`
}

// User is the per-user profile document. It also owns the category
// configuration and the paid-months overlay, keyed "<cardID>-YYYY-MM".
type User struct {
	UID         string          `firestore:"uid" json:"uid"`
	Name        string          `firestore:"name" json:"name"`
	Phone       string          `firestore:"phone" json:"phone"`
	Email       string          `firestore:"email" json:"email"`
	CountryCode string          `firestore:"countryCode" json:"countryCode"`
	Categories  Categories      `firestore:"categories" json:"categories"`
	PaidMonths  map[string]bool `firestore:"paidMonths" json:"paidMonths"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `firestore:"updatedAt" json:"updatedAt"`
}
