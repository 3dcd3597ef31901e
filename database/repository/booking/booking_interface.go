package bookingRepo

import (
	"bookify/models"
)

// Transition describes the field changes of one lifecycle step. Nil pointer
// fields are left untouched. ClearRejectionReason removes the stored reason
// regardless of RejectionReason.
type Transition struct {
	Status               *models.BookingStatus
	RejectionReason      *string
	ClearRejectionReason bool
	Tracking             *string
	TrackingMessage      *string
	AppendEntry          *models.TrackingHistoryEntry
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByClient retrieves a client's bookings, newest first.
	GetByClient(clientID string) ([]models.Booking, error)
	// GetByBusiness retrieves a business's bookings, newest first.
	GetByBusiness(businessID string) ([]models.Booking, error)
	// ApplyTransition atomically applies t to the booking, but only while
	// its current status is in allowed. It returns the updated document,
	// or (nil, nil) when no booking matched the id+status filter. This is
	// the conditional update that serializes racing transitions: the first
	// caller wins, the loser sees no match.
	ApplyTransition(id string, allowed []models.BookingStatus, t Transition) (*models.Booking, error)
}
