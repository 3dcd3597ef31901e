package clientRepo

import (
	"bookify/models"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	// Create inserts a new client record.
	Create(client *models.Client) error
	// GetByID retrieves a client by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Client, error)
	// GetSelectedAddress returns the client's currently-selected address,
	// or (nil, nil) when no address is selected.
	GetSelectedAddress(id string) (*models.Address, error)
	// GetTokens returns the client's notification tokens.
	GetTokens(id string) ([]string, error)
	// AddTokens adds tokens to the client's token set, skipping duplicates.
	AddTokens(id string, tokens []string) error
	// RemoveTokens atomically pulls tokens from the client's token set.
	RemoveTokens(id string, tokens []string) error
}
