package warehouse

import (
	"mock-factory/store"
)

// Shipment groups deliveries leaving the warehouse together.
type Shipment struct {
	ID         uint             `json:"id"`
	Deliveries []store.Delivery `json:"deliveries"`
	Origin     store.Address    `json:"origin"`
	Dock       *Dock            `json:"dock,omitempty"`
}

// Dock is a loading dock.
type Dock struct {
	Code string `json:"code"`
}
