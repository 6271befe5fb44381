package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

type ItemService interface {
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	CreateItem(ctx context.Context, ownerID string, request models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, ownerID, itemID string) error
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// logging or validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}

// PasswordHasher hashes and verifies passwords. Compare returns
// workers.ErrPasswordMismatch for a wrong password.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) error
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}
