package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-task-keeper-test"
	testUserID  = "0192f0a8-0000-7000-8000-000000000001"
)

var testAppConfig = config.App{
	TokenSignKey:  testSignKey,
	TokenIssuer:   testIssuer,
	TokenDuration: time.Hour,
	BcryptCost:    bcrypt.MinCost,
	Version:       "test",
}

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// newTestAuthSvc is a helper that builds authService over gomock mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockIDGenerator,
) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	svc := NewAuthService(repo, hasher, ids, testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, hasher, ids
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, ids := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash(ctx, "s3cret").Return("bcrypt-hash", nil),
		ids.EXPECT().Generate().Return(testUserID),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, testUserID, u.UserID)
				assert.Equal(t, "alice@example.com", u.Email, "email must be trimmed")
				assert.Equal(t, "bcrypt-hash", u.PasswordHash)
				assert.Equal(t, fixedNow, u.CreatedAt)
				return u, nil
			},
		),
	)

	user, token, err := svc.RegisterUser(ctx, models.Credentials{Email: "  alice@example.com ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.UserID)
	assert.Equal(t, testUserID, token.UserID)
	assert.Equal(t, "alice@example.com", token.Email)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_RegisterUser_DuplicateReturnsStoredRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, ids := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	existing := models.User{UserID: "existing-id", Email: "alice@example.com", PasswordHash: "old"}

	hasher.EXPECT().Hash(ctx, "other").Return("new-hash", nil)
	ids.EXPECT().Generate().Return(testUserID)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(existing, nil)

	user, token, err := svc.RegisterUser(ctx, models.Credentials{Email: "alice@example.com", Password: "other"})
	require.NoError(t, err)
	assert.Equal(t, "existing-id", user.UserID)
	assert.Equal(t, "existing-id", token.UserID)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"empty email", models.Credentials{Password: "pw"}},
		{"blank email", models.Credentials{Email: "   ", Password: "pw"}},
		{"empty password", models.Credentials{Email: "a@b.c"}},
		{"too long password", models.Credentials{Email: "a@b.c", Password: strings.Repeat("p", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestAuthSvc(t, ctrl)

			_, _, err := svc.RegisterUser(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher, _ := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any(), "pw").Return("", workers.ErrHasherStopped)

	_, _, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, workers.ErrHasherStopped)
}

func TestAuthService_RegisterUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, ids := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("h", nil)
	ids.EXPECT().Generate().Return(testUserID)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, _, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: testUserID, Email: "alice@example.com", PasswordHash: "h"}
	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)
	hasher.EXPECT().Compare(ctx, "h", "s3cret").Return(nil)

	token, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknown := svc.Login(ctx, models.Credentials{Email: "nobody@example.com", Password: "pw"})

	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{UserID: testUserID, PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare(ctx, "h", "wrong").Return(workers.ErrPasswordMismatch)
	_, errWrong := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailureIsNotCredentialsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrScanningRow)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_CompareFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{PasswordHash: "broken"}, nil)
	hasher.EXPECT().Compare(gomock.Any(), "broken", "pw").Return(errors.New("crypto/bcrypt: hashedSecret too short"))

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	expired, err := utils.GenerateJWTToken(testIssuer, testUserID, "a@b.c", time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", testUserID, "a@b.c", time.Hour, testSignKey)
	require.NoError(t, err)

	otherKey, err := utils.GenerateJWTToken(testIssuer, testUserID, "a@b.c", time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"expired", expired.SignedString},
		{"wrong issuer", otherIssuer.SignedString},
		{"wrong key", otherKey.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(models.User{UserID: testUserID, Email: "a@b.c"}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.GetUser(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)

	_, err = svc.GetUser(context.Background(), "gone")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── round trip over sqlite and the real hasher ───────────────────────────────

func TestAuthService_RegisterLoginVerify_RoundTrip(t *testing.T) {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	hasher := workers.NewPasswordHasher(2, bcrypt.MinCost, logger.Nop())
	hasher.Run()
	t.Cleanup(hasher.Stop)

	svc := NewAuthService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), testAppConfig, logger.Nop())

	user, regToken, err := svc.RegisterUser(ctx, models.Credentials{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.True(t, utils.IsValidUUID(user.UserID))

	loginToken, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	for _, tok := range []models.Token{regToken, loginToken} {
		parsed, err := svc.ParseToken(ctx, tok.SignedString)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, parsed.UserID)
	}

	again, _, err := svc.RegisterUser(ctx, models.Credentials{Email: "alice@example.com", Password: "different"})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, again.UserID, "duplicate registration returns the stored row")

	_, err = svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "different"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "duplicate registration must not change the password")

	me, err := svc.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
}
