package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/mailer"
	"github.com/MKhiriev/go-post-keeper/internal/store"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
)

const (
	verifyEmailPath   = "/api/user/verify-email/"
	resetPasswordPath = "/api/user/reset-password/"
)

// authService is the concrete implementation of AuthService.
// It handles registration, email verification, credential checks, password
// reset and token lifecycle using a UserRepository for persistence, bcrypt
// for password hashing and purpose-bound JWTs for every emailed link.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mail receives verification and reset emails for background delivery.
	mail MailDispatcher

	validator validators.Validator

	// passwordHashCost is the bcrypt work factor used for new hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	sessionTokenDuration      time.Duration
	verificationTokenDuration time.Duration
	resetTokenDuration        time.Duration

	// publicURL is the base of links sent by email.
	publicURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and MailDispatcher and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mail MailDispatcher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:            userRepository,
		mail:                      mail,
		validator:                 validator,
		passwordHashCost:          cfg.PasswordHashCost,
		tokenSignKey:              cfg.TokenSignKey,
		tokenIssuer:               cfg.TokenIssuer,
		sessionTokenDuration:      cfg.TokenDuration,
		verificationTokenDuration: cfg.VerificationTokenDuration,
		resetTokenDuration:        cfg.ResetTokenDuration,
		publicURL:                 strings.TrimRight(cfg.PublicURL, "/"),
		logger:                    logger,
	}
}

// Register creates a new, unverified user account and schedules the
// verification email.
//
// Returns the persisted user (without password hash) or:
//   - ErrInvalidDataProvided wrapping a *validators.ValidationError if a field
//     is missing or malformed.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
//
// A failure to issue the verification token or to enqueue the email is
// logged and does not fail the registration.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Normalize()
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	user.Password = ""

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.TokenPurposeEmailVerification, a.verificationTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("verification token creation failed")
		return user, nil
	}

	msg := mailer.NewVerificationMessage(user.Email, user.Name, a.publicURL+verifyEmailPath+token.String())
	if !a.mail.Enqueue(ctx, msg) {
		log.Warn().Str("user_id", user.UserID).Msg("verification email was not queued")
	}

	return user, nil
}

// VerifyEmail marks the token's subject as verified. Verifying an already
// verified user succeeds.
//
// Returns ErrInvalidToken if the token is malformed, expired, issued for
// another purpose, or names a user that does not exist.
func (a *authService) VerifyEmail(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	token, err := a.parseToken(tokenString, models.TokenPurposeEmailVerification)
	if err != nil {
		log.Debug().Err(err).Msg("verification token rejected")
		return ErrInvalidToken
	}

	if err = a.userRepository.MarkUserVerified(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", token.UserID).Msg("verification token subject not found")
			return ErrInvalidToken
		}
		log.Err(err).Str("user_id", token.UserID).Msg("marking user as verified failed")
		return fmt.Errorf("marking user as verified failed: %w", err)
	}

	return nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns the authenticated user record with the token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password does not
//     match. Both cases are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	req.Normalize()
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", req.Email).Msg("login for unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := utils.ComparePassword(user.Password, req.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password comparison failed")
		return models.User{}, models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !match {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	user.Password = ""

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.TokenPurposeSession, a.sessionTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("session token creation failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return user, token, nil
}

// RequestPasswordReset schedules a password reset email for the account
// registered under email. Unknown emails are logged and reported as success
// so the response does not reveal which addresses exist.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	req := models.ForgotPasswordRequest{Email: email}
	req.Normalize()
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("password reset requested for unknown email")
			return nil
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.TokenPurposePasswordReset, a.resetTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("reset token creation failed")
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	msg := mailer.NewPasswordResetMessage(user.Email, user.Name, a.publicURL+resetPasswordPath+token.String())
	if !a.mail.Enqueue(ctx, msg) {
		log.Warn().Str("user_id", user.UserID).Msg("password reset email was not queued")
	}

	return nil
}

// ResetPassword replaces the password of the token's subject.
//
// The new password is validated before the token, so a malformed request
// yields ErrInvalidDataProvided even with a bad token. A bad, expired or
// foreign-purpose token, or one naming a missing user, yields ErrInvalidToken.
func (a *authService) ResetPassword(ctx context.Context, tokenString string, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid reset data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.parseToken(tokenString, models.TokenPurposePasswordReset)
	if err != nil {
		log.Debug().Err(err).Msg("reset token rejected")
		return ErrInvalidToken
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, token.UserID, hash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", token.UserID).Msg("reset token subject not found")
			return ErrInvalidToken
		}
		log.Err(err).Str("user_id", token.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// Authenticate validates a session token and loads its subject.
//
// Returns ErrInvalidToken if the token fails signature, expiry, issuer or
// purpose checks, and ErrUnauthorized if the subject no longer exists.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.parseToken(tokenString, models.TokenPurposeSession)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", token.UserID).Msg("session token subject not found")
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Str("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	user.Password = ""

	return user, nil
}

func (a *authService) parseToken(tokenString string, purpose models.TokenPurpose) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidToken
	}
	return utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, purpose)
}
