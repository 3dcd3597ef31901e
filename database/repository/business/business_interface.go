package businessRepo

import (
	"bookify/models"
)

// BusinessRepository defines data access for businesses.
type BusinessRepository interface {
	// Create inserts a new business record.
	Create(business *models.Business) error
	// GetByID retrieves a business by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Business, error)
	// GetSchedule returns the business's weekly schedule, or nil when none
	// is configured.
	GetSchedule(id string) (*models.WeeklySchedule, error)
	// UpdateSchedule replaces the business's weekly schedule.
	UpdateSchedule(id string, schedule *models.WeeklySchedule) error
	// GetTokens returns the business's notification tokens.
	GetTokens(id string) ([]string, error)
	// AddTokens adds tokens to the business's token set, skipping duplicates.
	AddTokens(id string, tokens []string) error
	// RemoveTokens atomically pulls tokens from the business's token set.
	RemoveTokens(id string, tokens []string) error
}
