package store

import (
	"time"
)

// Fruit is the kind of fruit a customer can order.
type Fruit string

const (
	FruitApples  Fruit = "apples"
	FruitOranges Fruit = "oranges"
	FruitBananas Fruit = "bananas"
)

// Priority is a numeric enum; its zero value is not a valid priority.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityHigh
)

// Address is where a delivery goes.
type Address struct {
	HouseNumber int    `json:"houseNumber"`
	Street      string `json:"street"`
	Postcode    string `json:"postcode"`
}

// FruitOrder is a single line of a delivery.
type FruitOrder struct {
	Fruit    Fruit `json:"fruit"`
	Quantity int   `json:"quantity"`
}

// Delivery is a fruit delivery to one address.
type Delivery struct {
	Name              string        `json:"name"`
	Address           Address       `json:"address"`
	IsNextDayDelivery bool          `json:"isNextDayDelivery"`
	Orders            []FruitOrder  `json:"orders"`
	Priority          Priority      `json:"priority"`
	Note              *string       `json:"note,omitempty"`
	Window            [2]time.Time  `json:"window"`
	ScheduledAt       time.Time     `json:"scheduledAt"`
	Transit           time.Duration `json:"transit"`
	Metadata          map[string]string
	Callback          func(Delivery) error `json:"-"`
	Signature         any                  `json:"signature"`

	internalID int64
}

// Category is a recursive catalogue node.
type Category struct {
	Name     string     `json:"name"`
	Children []Category `json:"children"`
}

// Page is a generic page of results.
type Page[T any] struct {
	Items []T `json:"items"`
	Next  string
}

// Catalogue uses an instantiated generic type.
type Catalogue struct {
	Fruits Page[Fruit] `json:"fruits"`
}

// Feed is not supported by the factory.
type Feed struct {
	Updates chan Delivery `json:"updates"`
}
