package serviceRepo

import (
	"bookify/models"
)

// ServiceRepository defines data access for the service catalog.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(service *models.Service) error
	// GetByID retrieves a service by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Service, error)
	// GetSnapshot returns the title/price/duration of a service for
	// copying onto a booking; (nil, nil) when the service does not exist.
	GetSnapshot(id string) (*models.ServiceSnapshot, error)
	// GetByBusiness lists a business's services.
	GetByBusiness(businessID string) ([]models.Service, error)
}
