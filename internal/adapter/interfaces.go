// Package adapter implements the client side of the REST API.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the API. Every method except
// Register, Login, Health and Version needs a bearer token set with
// SetToken or obtained by Register or Login.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register creates an account and keeps the returned token.
	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)
	// Login exchanges credentials for a token and keeps it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)
	// Me returns the authenticated user.
	Me(ctx context.Context) (models.UserResponse, error)

	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (string, error)
}
