package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock github.com/MKhiriev/go-task-keeper/internal/store UserRepository,ItemRepository

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user unless the email is taken and returns the
	// stored row for that email either way.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ItemRepository persists items. Every method is scoped to a single owner.
type ItemRepository interface {
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
	Update(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, ownerID, itemID string) error
}
