package api

import "prodnames/internal/model"

type SeasonProductsRequest struct {
	Season string `json:"season"`
}

type GenerateNamesRequest struct {
	// Prompt is accepted for client compatibility and not used.
	Prompt        string   `json:"prompt"`
	Count         *int     `json:"count"`
	ExistingNames []string `json:"existingNames"`
}

type CheckNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type StatusResponse struct {
	Status            string `json:"status"`
	Service           string `json:"service"`
	ShopifyConfigured bool   `json:"shopify_configured"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	ShopifyConfigured bool   `json:"shopify_configured"`
	Store             string `json:"store"`
	APIVersion        string `json:"api_version"`
}

type GenerateNamesResponse struct {
	Success        bool                  `json:"success"`
	Names          []model.GeneratedName `json:"names"`
	Count          int                   `json:"count"`
	TotalAvailable int                   `json:"total_available"`
	ExcludedCount  int                   `json:"excluded_count"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
