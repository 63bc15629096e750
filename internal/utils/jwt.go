package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is the literal, case-sensitive scheme prefix of the
// Authorization header accepted by protected routes.
const bearerPrefix = "Bearer "

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is absent, uses another scheme or carries an empty token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrUnexpectedTokenPurpose is returned when a valid token was issued for
	// another flow.
	ErrUnexpectedTokenPurpose = errors.New("unexpected token purpose")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - purpose        : the flow the token may be used for
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", userID, models.TokenPurposeSession, time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, purpose models.TokenPurpose, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || purpose == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.TokenClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Purpose:      purpose,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - purpose claim check against the expected purpose
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service", models.TokenPurposeSession)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, purpose models.TokenPurpose) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Purpose != purpose {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrUnexpectedTokenPurpose, claims.Purpose, purpose)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.Subject,
		Purpose:      claims.Purpose,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme match is case-sensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
