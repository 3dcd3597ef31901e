package models

import "time"

// Service is one entry in a business's service catalog.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	Title      string    `bson:"title" json:"title"`
	Price      float64   `bson:"price" json:"price"`
	Duration   string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSnapshot is the subset of a service copied onto a booking at
// creation time.
type ServiceSnapshot struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"`
}
