package booking

import (
	"context"
	"time"

	bookingRepo "bookify/database/repository/booking"
	businessRepo "bookify/database/repository/business"
	clientRepo "bookify/database/repository/client"
	serviceRepo "bookify/database/repository/service"
	"bookify/models"
	"bookify/services/notification"

	"go.uber.org/zap"
)

// CreateInput carries a booking creation request. Service fields may be
// supplied explicitly or resolved from ServiceID.
type CreateInput struct {
	ClientID   string `json:"clientId" binding:"required"`
	BusinessID string `json:"businessId" binding:"required"`
	ServiceID  string `json:"serviceId,omitempty"`

	ServiceTitle    string  `json:"serviceTitle,omitempty"`
	ServicePrice    float64 `json:"servicePrice,omitempty"`
	ServiceDuration string  `json:"serviceDuration,omitempty"`

	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`

	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ProgressUpdate carries one progress step for a booking's tracking ledger.
type ProgressUpdate struct {
	Label       string         `json:"label" binding:"required"`
	Message     string         `json:"message,omitempty"`
	ActorID     string         `json:"actorId,omitempty"`
	ActorType   string         `json:"actorType,omitempty"`
	ActorName   string         `json:"actorName,omitempty"`
	SubLocation string         `json:"subLocation,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	Photos      []string       `json:"photos,omitempty"`
	ExternalID  string         `json:"externalId,omitempty"`
}

// Result is the outcome of a mutating lifecycle operation: the booking in
// its new state plus the best-effort notification reports. Notification
// failures never fail the operation.
type Result struct {
	Booking       *models.Booking       `json:"booking"`
	Notifications []notification.Report `json:"notifications,omitempty"`
}

// BookingService owns the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateInput) (*Result, error)
	Confirm(ctx context.Context, bookingID string) (*Result, error)
	Reject(ctx context.Context, bookingID, reason string) (*Result, error)
	Cancel(ctx context.Context, bookingID, requestingClientID string) (*Result, error)
	Progress(ctx context.Context, bookingID string, update ProgressUpdate) (*Result, error)

	GetByID(bookingID string) (*models.Booking, error)
	ListByClient(clientID string) ([]models.Booking, error)
	ListByBusiness(businessID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings   bookingRepo.BookingRepository
	Businesses businessRepo.BusinessRepository
	Clients    clientRepo.ClientRepository
	Services   serviceRepo.ServiceRepository
	Dispatcher *notification.Dispatcher
	Logger     *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// GetByID retrieves a booking.
func (s *DefaultBookingService) GetByID(bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Kind: "booking", ID: bookingID}
	}
	return b, nil
}

// ListByClient lists a client's bookings, newest first.
func (s *DefaultBookingService) ListByClient(clientID string) ([]models.Booking, error) {
	return s.Bookings.GetByClient(clientID)
}

// ListByBusiness lists a business's bookings, newest first.
func (s *DefaultBookingService) ListByBusiness(businessID string) ([]models.Booking, error) {
	return s.Bookings.GetByBusiness(businessID)
}
