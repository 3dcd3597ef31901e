package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	bookingRepo "bookify/database/repository/booking"
	"bookify/models"
	"bookify/services/notification"

	"github.com/google/uuid"
)

// transitionable are the statuses a lifecycle transition may start from.
var transitionable = []models.BookingStatus{models.BookingPending, models.BookingConfirmed}

// Confirm moves a booking to confirmed and clears any stale rejection
// reason. Confirming an already-confirmed booking succeeds without mutation.
func (s *DefaultBookingService) Confirm(ctx context.Context, bookingID string) (*Result, error) {
	b, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingConfirmed {
		return &Result{Booking: b}, nil
	}
	if b.Status.Terminal() {
		return nil, &ConflictError{Current: b.Status, Operation: "confirm"}
	}

	status := models.BookingConfirmed
	updated, err := s.applyGuarded(bookingID, "confirm", bookingRepo.Transition{
		Status:               &status,
		ClearRejectionReason: true,
	})
	if err != nil {
		return nil, err
	}

	report := s.notifyClient(ctx, updated.ClientID, notification.PushMessage{
		Title: "Booking confirmed",
		Body:  fmt.Sprintf("Your booking for %s on %s has been confirmed.", updated.ServiceTitle, updated.ScheduledAt.Format("2 January, 3:04 PM")),
		Data: map[string]string{
			"type":      "booking_confirmed",
			"bookingId": updated.ID,
			"role":      "client",
		},
	})
	return &Result{Booking: updated, Notifications: []notification.Report{report}}, nil
}

// Reject moves a booking to rejected, storing the trimmed reason when one
// was supplied.
func (s *DefaultBookingService) Reject(ctx context.Context, bookingID, reason string) (*Result, error) {
	b, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, &ConflictError{Current: b.Status, Operation: "reject"}
	}

	status := models.BookingRejected
	t := bookingRepo.Transition{Status: &status}
	reason = strings.TrimSpace(reason)
	if reason != "" {
		t.RejectionReason = &reason
	} else {
		t.ClearRejectionReason = true
	}

	updated, err := s.applyGuarded(bookingID, "reject", t)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your booking for %s was declined.", updated.ServiceTitle)
	if reason != "" {
		body = fmt.Sprintf("Your booking for %s was declined: %s", updated.ServiceTitle, reason)
	}
	report := s.notifyClient(ctx, updated.ClientID, notification.PushMessage{
		Title: "Booking declined",
		Body:  body,
		Data: map[string]string{
			"type":      "booking_rejected",
			"bookingId": updated.ID,
			"role":      "client",
		},
	})
	return &Result{Booking: updated, Notifications: []notification.Report{report}}, nil
}

// Cancel moves a booking to cancelled. Only the owning client may cancel;
// both parties are notified, concurrently since the two dispatches are
// independent.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, requestingClientID string) (*Result, error) {
	b, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != requestingClientID {
		return nil, &ForbiddenError{Message: "only the booking's client may cancel it"}
	}
	if b.Status.Terminal() {
		return nil, &ConflictError{Current: b.Status, Operation: "cancel"}
	}

	status := models.BookingCancelled
	tracking := "Cancelled"
	updated, err := s.applyGuarded(bookingID, "cancel", bookingRepo.Transition{
		Status:   &status,
		Tracking: &tracking,
		AppendEntry: &models.TrackingHistoryEntry{
			ID:         uuid.New().String(),
			Status:     "Cancelled",
			Message:    "Booking cancelled by client",
			ActorID:    requestingClientID,
			ActorType:  "client",
			NotifyPush: true,
			CreatedAt:  time.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	when := updated.ScheduledAt.Format("2 January, 3:04 PM")
	businessMsg := notification.PushMessage{
		Title: "Booking cancelled",
		Body:  fmt.Sprintf("The booking for %s on %s was cancelled by the client.", updated.ServiceTitle, when),
		Data: map[string]string{
			"type":      "booking_cancelled",
			"bookingId": updated.ID,
			"role":      "business",
		},
	}
	clientMsg := notification.PushMessage{
		Title: "Booking cancelled",
		Body:  fmt.Sprintf("Your booking for %s on %s has been cancelled.", updated.ServiceTitle, when),
		Data: map[string]string{
			"type":      "booking_cancelled",
			"bookingId": updated.ID,
			"role":      "client",
		},
	}

	reports := make([]notification.Report, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		reports[0] = s.notifyBusiness(ctx, updated.BusinessID, businessMsg)
	}()
	go func() {
		defer wg.Done()
		reports[1] = s.notifyClient(ctx, updated.ClientID, clientMsg)
	}()
	wg.Wait()

	return &Result{Booking: updated, Notifications: reports}, nil
}

// applyGuarded runs the conditional transition and translates a missed
// filter into NotFound or Conflict. A concurrent transition that lands first
// wins; this caller then reports Conflict with the winner's status.
func (s *DefaultBookingService) applyGuarded(bookingID, operation string, t bookingRepo.Transition) (*models.Booking, error) {
	updated, err := s.Bookings.ApplyTransition(bookingID, transitionable, t)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		current, err := s.Bookings.GetByID(bookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read booking: %w", err)
		}
		if current == nil {
			return nil, &NotFoundError{Kind: "booking", ID: bookingID}
		}
		return nil, &ConflictError{Current: current.Status, Operation: operation}
	}
	return updated, nil
}
