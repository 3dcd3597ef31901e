package booking

import (
	"bookify/models"
)

// validateBooking enforces the structural invariants before any persistence
// attempt. A failure here means nothing was written.
func validateBooking(b *models.Booking) error {
	if b.ClientID == "" {
		return &ValidationError{Field: "clientId", Message: "client id is required"}
	}
	if b.BusinessID == "" {
		return &ValidationError{Field: "businessId", Message: "business id is required"}
	}
	if b.ServiceTitle == "" {
		return &ValidationError{Field: "serviceTitle", Message: "service title is required"}
	}
	if b.ScheduledAt.IsZero() {
		return &ValidationError{Field: "scheduledAt", Message: "scheduled time is required"}
	}
	if b.ContactName == "" {
		return &ValidationError{Field: "contactName", Message: "contact name is required"}
	}
	if b.ContactPhone == "" {
		return &ValidationError{Field: "contactPhone", Message: "contact phone is required"}
	}
	if b.Location != nil && b.Location.Address == "" {
		return &ValidationError{Field: "location.address", Message: "location requires an address"}
	}
	if b.RejectionReason != "" && b.Status != models.BookingRejected {
		return &ValidationError{Field: "rejectionReason", Message: "rejection reason is only valid on rejected bookings"}
	}
	for _, entry := range b.TrackingHistory {
		if entry.Status == "" {
			return &ValidationError{Field: "trackingHistory", Message: "tracking entry requires a status label"}
		}
		if entry.CreatedAt.IsZero() {
			return &ValidationError{Field: "trackingHistory", Message: "tracking entry requires a timestamp"}
		}
	}
	return nil
}
