package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued by the service. The standard
// "sub" claim carries the user ID; Email is a private claim.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Token is a signed session credential together with the identity it
// encodes.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Email is the address the token was issued for.
	Email string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
