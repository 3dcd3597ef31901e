package models

import (
	"strings"
	"time"
)

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
)

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted || s == BookingRejected
}

// PaymentStatus tracks payment settlement independently of the lifecycle.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// BookingLocation is the address snapshot copied from the client's selected
// address at creation time. It is never re-derived afterwards.
type BookingLocation struct {
	Address   string  `bson:"address" json:"address"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Floor     string  `bson:"floor,omitempty" json:"floor,omitempty"`
	Note      string  `bson:"note,omitempty" json:"note,omitempty"`
}

// TrackingHistoryEntry is one immutable record in a booking's progress ledger.
// Entries are append-only; prior entries are never mutated or reordered.
type TrackingHistoryEntry struct {
	ID          string         `bson:"id" json:"id"`
	Status      string         `bson:"status" json:"status"`
	Message     string         `bson:"message,omitempty" json:"message,omitempty"`
	ActorID     string         `bson:"actorId,omitempty" json:"actorId,omitempty"`
	ActorType   string         `bson:"actorType,omitempty" json:"actorType,omitempty"`
	ActorName   string         `bson:"actorName,omitempty" json:"actorName,omitempty"`
	SubLocation string         `bson:"subLocation,omitempty" json:"subLocation,omitempty"`
	Meta        map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
	NotifyPush  bool           `bson:"notifyPush" json:"notifyPush"`
	NotifySMS   bool           `bson:"notifySms" json:"notifySms"`
	Photos      []string       `bson:"photos,omitempty" json:"photos,omitempty"`
	ExternalID  string         `bson:"externalId,omitempty" json:"externalId,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// Booking represents one scheduled service request and its lifecycle.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	ClientID   string `bson:"clientId" json:"clientId"`
	BusinessID string `bson:"businessId" json:"businessId"`
	ServiceID  string `bson:"serviceId,omitempty" json:"serviceId,omitempty"`

	// Service snapshot, copied at creation so later catalog edits never
	// alter booking history.
	ServiceTitle    string  `bson:"serviceTitle" json:"serviceTitle"`
	ServicePrice    float64 `bson:"servicePrice" json:"servicePrice"`
	ServiceDuration string  `bson:"serviceDuration,omitempty" json:"serviceDuration,omitempty"`

	ScheduledAt time.Time `bson:"scheduledAt" json:"scheduledAt"`

	ContactName  string `bson:"contactName" json:"contactName"`
	ContactPhone string `bson:"contactPhone" json:"contactPhone"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`

	Status          BookingStatus `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	RejectionReason string        `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	Location *BookingLocation `bson:"location,omitempty" json:"location,omitempty"`

	Tracking        string                 `bson:"tracking,omitempty" json:"tracking,omitempty"`
	TrackingMessage string                 `bson:"trackingMessage,omitempty" json:"trackingMessage,omitempty"`
	TrackingHistory []TrackingHistoryEntry `bson:"trackingHistory,omitempty" json:"trackingHistory,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CompletedLabel reports whether a tracking label marks the booking as done,
// ignoring case ("Completed", "COMPLETED", ...).
func CompletedLabel(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), string(BookingCompleted))
}
