package dto

import "time"

// CreateStoreRequest body para POST /api/stores.
type CreateStoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
}

// UpdateStoreRequest body para PUT /api/stores/:id (campos opcionales).
type UpdateStoreRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Manager  *string `json:"manager,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// StoreResponse representación HTTP de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Manager   string    `json:"manager"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
