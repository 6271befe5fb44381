package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt (through
// a PasswordHasher pool) for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher      PasswordHasher
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    idGenerator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a user account and issues a session token for it.
//
// The email is trimmed; an empty email or password, or a password longer
// than bcrypt accepts, yields ErrInvalidDataProvided.
//
// Registering an email that already exists is not an error: the stored row
// is returned together with a token for it, so the returned ID is not
// necessarily new and the supplied password is not checked against it.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Warn().Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}
	if len(credentials.Password) > maxPasswordBytes {
		log.Warn().Str("email", email).Msg("password is too long")
		return models.User{}, models.Token{}, fmt.Errorf("%w: password longer than %d bytes", ErrInvalidDataProvided, maxPasswordBytes)
	}

	hash, err := a.hasher.Hash(ctx, credentials.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.idGenerator.Generate(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser)
	if err != nil {
		log.Err(err).Str("user_id", registeredUser.UserID).Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a session token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Warn().Msg("empty login credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = a.hasher.Compare(ctx, foundUser.PasswordHash, credentials.Password)
	if errors.Is(err, workers.ErrPasswordMismatch) {
		log.Warn().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("password comparison failed")
		return models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}

	token, err := a.createToken(foundUser)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("token creation failed")
		return models.Token{}, err
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed,
// empty) is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser returns the stored user. store.ErrNoUserWasFound stays matchable
// in the returned error.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// createToken issues a signed JWT for the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
