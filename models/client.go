package models

import "time"

// Address is one entry in a client's address book. At most one entry is
// flagged Selected; that one is snapshotted onto bookings at creation time.
type Address struct {
	ID        string   `bson:"id" json:"id"`
	Label     string   `bson:"label,omitempty" json:"label,omitempty"`
	Address   string   `bson:"address" json:"address"`
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Floor     string   `bson:"floor,omitempty" json:"floor,omitempty"`
	Note      string   `bson:"note,omitempty" json:"note,omitempty"`
	Selected  bool     `bson:"selected" json:"selected"`
}

// Client is the requesting-party entity.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Addresses []Address `bson:"addresses,omitempty" json:"addresses,omitempty"`
	FCMTokens []string  `bson:"fcmTokens,omitempty" json:"fcmTokens,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
