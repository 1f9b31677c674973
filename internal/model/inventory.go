package model

import "time"

// InventoryItem is a piece of stock held by the ISP (routers, cable, etc.).
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Location    string    `json:"location,omitempty"`
	Supplier    string    `json:"supplier,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TotalValue is quantity times unit price.
func (i InventoryItem) TotalValue() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
