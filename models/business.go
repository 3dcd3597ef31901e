package models

import "time"

// Business is the service-provider entity. It owns the weekly schedule the
// availability check runs against and the FCM tokens booking notifications
// fan out to.
type Business struct {
	ID          string          `bson:"id" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Phone       string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string          `bson:"email,omitempty" json:"email,omitempty"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Schedule    *WeeklySchedule `bson:"schedule,omitempty" json:"schedule,omitempty"`
	FCMTokens   []string        `bson:"fcmTokens,omitempty" json:"fcmTokens,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
