package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (UserID, IsVerified, CreatedAt). The password hash is not returned.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, r.ids.Generate(), user.Name, user.Email, user.Password)
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.IsVerified, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given (normalised) email,
// including the password hash.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, findUserByEmail, email)
		return row.Scan(&found.UserID, &found.Name, &found.Email, &found.Password, &found.IsVerified, &found.CreatedAt)
	})
	if err != nil {
		return models.User{}, r.lookupError(ctx, "*userRepository.FindUserByEmail", err)
	}

	return found, nil
}

// FindUserByID retrieves the user with the given id without the password hash.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, findUserByID, userID)
		return row.Scan(&found.UserID, &found.Name, &found.Email, &found.IsVerified, &found.CreatedAt)
	})
	if err != nil {
		return models.User{}, r.lookupError(ctx, "*userRepository.FindUserByID", err)
	}

	return found, nil
}

// MarkUserVerified sets is_verified for the user. Verifying an already
// verified user succeeds.
func (r *userRepository) MarkUserVerified(ctx context.Context, userID string) error {
	return r.execForUser(ctx, "*userRepository.MarkUserVerified", markUserVerified, userID)
}

// UpdatePassword replaces the stored password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.execForUser(ctx, "*userRepository.UpdatePassword", updateUserPassword, userID, passwordHash)
}

// execForUser runs a single-row UPDATE keyed by user_id and reports
// [ErrNoUserWasFound] when nothing matched.
func (r *userRepository) execForUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// lookupError maps single-user lookup failures. A malformed id cannot match
// any row, so it is reported as not found too.
func (r *userRepository) lookupError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrNoUserWasFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error looking up user")
	return fmt.Errorf("unexpected DB error: %w", err)
}
