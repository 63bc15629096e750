package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose distinguishes what a signed token may be used for. A token is
// only accepted by the endpoint that consumes its purpose.
type TokenPurpose string

const (
	// TokenPurposeSession marks bearer tokens accepted by protected routes.
	TokenPurposeSession TokenPurpose = "session"

	// TokenPurposeEmailVerification marks tokens embedded in verification links.
	TokenPurposeEmailVerification TokenPurpose = "email_verification"

	// TokenPurposePasswordReset marks tokens embedded in password reset links.
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// TokenClaims is the claim set carried by every token issued by the service:
// the standard registered claims (sub, iss, iat, exp) plus the purpose.
type TokenClaims struct {
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in a header or embedded in a link.
// UserID and Purpose are parsed copies of the "sub" and "purpose" claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Purpose is the value of the "purpose" claim.
	Purpose TokenPurpose `json:"-"`

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
