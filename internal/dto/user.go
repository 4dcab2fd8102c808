package dto

import "github.com/javiermalaquita9-svg/finanzas-app/internal/models"

type RegisterRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
}

type UpdateCategoriesRequest struct {
	Categories models.Categories `json:"categories"`
}
