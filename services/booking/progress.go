package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "bookify/database/repository/booking"
	"bookify/models"
	"bookify/services/notification"

	"github.com/google/uuid"
)

// Progress appends one entry to the booking's tracking ledger and updates
// the current tracking label. A label of "completed" (any case) finishes the
// booking; any other label forces the status to confirmed. Repeating a label
// appends again; the ledger is not deduplicated.
func (s *DefaultBookingService) Progress(ctx context.Context, bookingID string, update ProgressUpdate) (*Result, error) {
	label := strings.TrimSpace(update.Label)
	if label == "" {
		return nil, &ValidationError{Field: "label", Message: "progress label is required"}
	}

	b, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	switch b.Status {
	case models.BookingCancelled, models.BookingRejected:
		return nil, &ConflictError{Current: b.Status, Operation: "progress"}
	case models.BookingCompleted:
		return nil, &ConflictError{Current: b.Status, Operation: "progress"}
	}

	status := models.BookingConfirmed
	if models.CompletedLabel(label) {
		status = models.BookingCompleted
	}

	message := strings.TrimSpace(update.Message)
	entry := &models.TrackingHistoryEntry{
		ID:          uuid.New().String(),
		Status:      label,
		Message:     message,
		ActorID:     update.ActorID,
		ActorType:   update.ActorType,
		ActorName:   update.ActorName,
		SubLocation: update.SubLocation,
		Meta:        update.Meta,
		Photos:      update.Photos,
		ExternalID:  update.ExternalID,
		NotifyPush:  true,
		CreatedAt:   time.Now(),
	}

	updated, err := s.applyGuarded(bookingID, "progress", bookingRepo.Transition{
		Status:          &status,
		Tracking:        &label,
		TrackingMessage: &message,
		AppendEntry:     entry,
	})
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your booking for %s is now: %s", updated.ServiceTitle, label)
	if message != "" {
		body += ". " + message
	}
	report := s.notifyClient(ctx, updated.ClientID, notification.PushMessage{
		Title: "Booking update",
		Body:  body,
		Data: map[string]string{
			"type":      "booking_progress",
			"bookingId": updated.ID,
			"status":    label,
			"role":      "client",
		},
	})
	return &Result{Booking: updated, Notifications: []notification.Report{report}}, nil
}
