package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
	testUserID  = "0192f0c4-7a3b-7c00-8000-000000000001"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, models.TokenPurposeSession, time.Hour, testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.String() != token.SignedString {
		t.Error("expected String() to return SignedString")
	}

	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, claims.Issuer)
	}
	if claims.Subject != testUserID {
		t.Errorf("expected subject %s, got %s", testUserID, claims.Subject)
	}
	if claims.Purpose != models.TokenPurposeSession {
		t.Errorf("expected purpose %s, got %s", models.TokenPurposeSession, claims.Purpose)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		purpose  models.TokenPurpose
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUserID, models.TokenPurposeSession, time.Hour, "key"},
		{"empty user", "iss", "", models.TokenPurposeSession, time.Hour, "key"},
		{"empty purpose", "iss", testUserID, "", time.Hour, "key"},
		{"zero duration", "iss", testUserID, models.TokenPurposeSession, 0, "key"},
		{"empty key", "iss", testUserID, models.TokenPurposeSession, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.purpose, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, models.TokenPurposePasswordReset, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer, models.TokenPurposePasswordReset)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != testUserID {
		t.Errorf("expected UserID %s, got %s", testUserID, parsed.UserID)
	}
	if parsed.Purpose != models.TokenPurposePasswordReset {
		t.Errorf("expected purpose %s, got %s", models.TokenPurposePasswordReset, parsed.Purpose)
	}
	if parsed.ExpiresAt.IsZero() {
		t.Error("expected ExpiresAt to be set")
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUserID, models.TokenPurposeSession, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	expired := signClaims(t, models.TokenClaims{
		Purpose: models.TokenPurposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	noExpiry := signClaims(t, models.TokenClaims{
		Purpose:          models.TokenPurposeSession,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: testUserID},
	})
	noSubject := signClaims(t, models.TokenClaims{
		Purpose: models.TokenPurposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		purpose models.TokenPurpose
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer, models.TokenPurposeSession},
		{"wrong issuer", valid.SignedString, testSignKey, "other-issuer", models.TokenPurposeSession},
		{"wrong purpose", valid.SignedString, testSignKey, testIssuer, models.TokenPurposeEmailVerification},
		{"malformed", "not.a.token", testSignKey, testIssuer, models.TokenPurposeSession},
		{"expired", expired, testSignKey, testIssuer, models.TokenPurposeSession},
		{"no expiry", noExpiry, testSignKey, testIssuer, models.TokenPurposeSession},
		{"no subject", noSubject, testSignKey, testIssuer, models.TokenPurposeSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, tt.purpose)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_WrongPurposeSentinel(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, models.TokenPurposeEmailVerification, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, models.TokenPurposeSession)
	if !errors.Is(err, ErrUnexpectedTokenPurpose) {
		t.Fatalf("expected ErrUnexpectedTokenPurpose, got: %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
		{"lowercase scheme", "bearer abc", "", true},
		{"other scheme", "Basic abc", "", true},
		{"no token", "Bearer ", "", true},
		{"no space", "Bearerabc", "", true},
		{"blank token", "Bearer    ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func signClaims(t *testing.T, claims models.TokenClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("failed to sign claims: %v", err)
	}
	return s
}
