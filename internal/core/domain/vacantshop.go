package domain

import "time"

// VacantShop is an available shop unit awaiting a tenant. Listings are
// readable by anyone; only administrators create, change, or remove them.
type VacantShop struct {
	ID         string    `json:"id"`
	ShopNumber string    `json:"shop_number"`
	Dimensions string    `json:"dimensions"`
	UserID     string    `json:"user"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
