package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookify/models"
	"bookify/services/availability"
	"bookify/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the requested time against the business's weekly
// schedule, snapshots the service terms and the client's selected address,
// persists the booking as pending and notifies the business.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateInput) (*Result, error) {
	if input.ClientID == "" {
		return nil, &ValidationError{Field: "clientId", Message: "client id is required"}
	}
	if input.BusinessID == "" {
		return nil, &ValidationError{Field: "businessId", Message: "business id is required"}
	}
	if input.ScheduledAt.IsZero() {
		return nil, &ValidationError{Field: "scheduledAt", Message: "scheduled time is required"}
	}

	client, err := s.Clients.GetByID(input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	if client == nil {
		return nil, &NotFoundError{Kind: "client", ID: input.ClientID}
	}

	business, err := s.Businesses.GetByID(input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve business: %w", err)
	}
	if business == nil {
		return nil, &NotFoundError{Kind: "business", ID: input.BusinessID}
	}

	// No schedule configured means no time constraint is enforced.
	if business.Schedule != nil {
		decision := availability.Check(business.Schedule, input.ScheduledAt)
		if !decision.Allowed {
			return nil, &ScheduleDeniedError{Reason: decision.Reason, AllowedRange: decision.AllowedRange}
		}
	}

	title, price, duration := input.ServiceTitle, input.ServicePrice, input.ServiceDuration
	if title == "" && input.ServiceID != "" {
		snap, err := s.Services.GetSnapshot(input.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve service: %w", err)
		}
		if snap == nil {
			return nil, &NotFoundError{Kind: "service", ID: input.ServiceID}
		}
		title, price, duration = snap.Title, snap.Price, snap.Duration
	}

	contactName := strings.TrimSpace(input.ContactName)
	if contactName == "" {
		contactName = client.Name
	}
	contactPhone := strings.TrimSpace(input.ContactPhone)
	if contactPhone == "" {
		contactPhone = client.Phone
	}

	now := time.Now()
	b := &models.Booking{
		ID:              uuid.New().String(),
		ClientID:        input.ClientID,
		BusinessID:      input.BusinessID,
		ServiceID:       input.ServiceID,
		ServiceTitle:    title,
		ServicePrice:    price,
		ServiceDuration: duration,
		ScheduledAt:     input.ScheduledAt,
		ContactName:     contactName,
		ContactPhone:    contactPhone,
		Notes:           input.Notes,
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentPending,
		Tracking:        "Created",
		TrackingHistory: []models.TrackingHistoryEntry{{
			ID:         uuid.New().String(),
			Status:     "Created",
			Message:    "Booking request submitted",
			ActorID:    input.ClientID,
			ActorType:  "client",
			ActorName:  client.Name,
			NotifyPush: true,
			CreatedAt:  now,
		}},
	}
	b.Location = s.snapshotLocation(input.ClientID)

	if err := validateBooking(b); err != nil {
		return nil, err
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	report := s.notifyBusiness(ctx, b.BusinessID, notification.PushMessage{
		Title: "New booking request",
		Body:  fmt.Sprintf("%s requested %s on %s.", contactName, title, b.ScheduledAt.Format("2 January, 3:04 PM")),
		Data: map[string]string{
			"type":      "booking_created",
			"bookingId": b.ID,
			"role":      "business",
		},
	})

	return &Result{Booking: b, Notifications: []notification.Report{report}}, nil
}

// snapshotLocation copies the client's currently-selected address onto the
// booking. Absence of a usable address is not an error; the booking is
// simply created without a location. The copy happens exactly once.
func (s *DefaultBookingService) snapshotLocation(clientID string) *models.BookingLocation {
	addr, err := s.Clients.GetSelectedAddress(clientID)
	if err != nil {
		s.logger().Warn("failed to load selected address, booking created without location",
			zap.String("clientId", clientID),
			zap.Error(err))
		return nil
	}
	if addr == nil || addr.Address == "" || addr.Latitude == nil || addr.Longitude == nil {
		return nil
	}
	return &models.BookingLocation{
		Address:   addr.Address,
		Latitude:  *addr.Latitude,
		Longitude: *addr.Longitude,
		Floor:     addr.Floor,
		Note:      addr.Note,
	}
}
