package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const testUserID = "0192f0c4-7a3b-7c00-8000-000000000001"

// fixedIDs always hands out the same identifier.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := &userRepository{
		db:     db,
		ids:    fixedIDs(testUserID),
		logger: logger.Nop(),
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userColumns = []string{"user_id", "name", "email", "is_verified", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "John", Email: "john@example.com", Password: "$2a$hash"}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testUserID, user.Name, user.Email, user.Password).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(testUserID, user.Name, user.Email, false, now))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != testUserID {
		t.Errorf("expected UserID=%s, got %s", testUserID, created.UserID)
	}
	if created.Password != "" {
		t.Error("created user must not carry the password hash")
	}
	if created.IsVerified {
		t.Error("new users must be unverified")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password", "is_verified", "created_at"}).
		AddRow(testUserID, "John", "john@example.com", "$2a$hash", true, now)

	mock.ExpectQuery("SELECT user_id, name, email, password").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Password != "$2a$hash" {
		t.Errorf("expected password hash to be loaded, got %q", found.Password)
	}
	if !found.IsVerified {
		t.Error("expected IsVerified=true")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password", "is_verified", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id, name, email, is_verified").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(testUserID, "John", "john@example.com", false, time.Now()))

	found, err := repo.FindUserByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != testUserID || found.Name != "John" {
		t.Errorf("unexpected user %+v", found)
	}
}

func TestFindUserByID_MalformedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindUserByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(testUserID).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(testUserID, "John", "john@example.com", false, time.Now()))

	found, err := repo.FindUserByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != testUserID {
		t.Errorf("unexpected user %+v", found)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindUserByID_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(testUserID).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(context.Background(), testUserID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkUserVerified(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "verified", result: sqlmock.NewResult(0, 1)},
		{name: "unknown user", result: sqlmock.NewResult(0, 0), wantErr: ErrNoUserWasFound},
		{name: "db failure", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec("UPDATE users SET is_verified").WithArgs(testUserID)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.MarkUserVerified(context.Background(), testUserID)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET password").
		WithArgs(testUserID, "$2a$new").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), testUserID, "$2a$new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatePassword_UnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET password").
		WithArgs(testUserID, "$2a$new").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), testUserID, "$2a$new")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
