package entity

import "time"

// Store representa una tienda de piso que recibe traslados desde el almacén.
type Store struct {
	ID        string
	Name      string
	Location  string
	Manager   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
