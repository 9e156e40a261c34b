package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// --- helpers ---

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "created_at", "updated_at"}
}

// --- CreateUser ---

func TestUserStorage_CreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("a@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	user, err := s.CreateUser(context.Background(), &domain.User{Email: "a@example.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected id 7, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pq.Error{Code: pgUniqueViolation})

	_, err := s.CreateUser(context.Background(), &domain.User{Email: "a@example.com", PasswordHash: "hash"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected domain.ErrDuplicateEmail, got %v", err)
	}
}

// --- lookups ---

func TestUserStorage_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := s.GetUserByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected domain.ErrNotFound, got %v", err)
	}
}

func TestUserStorage_GetUserByID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(3), "u@example.com", "hash", now, now))

	user, err := s.GetUserByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetUserByID error: %v", err)
	}
	if user.Email != "u@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}
}

// --- DeleteUser: явный каскад в транзакции ---

func TestUserStorage_DeleteUser_CascadesContacts(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts WHERE user_id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.DeleteUser(context.Background(), 5); err != nil {
		t.Fatalf("DeleteUser error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStorage_DeleteUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStorage(db, testLogger())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts WHERE user_id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteUser(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected domain.ErrNotFound, got %v", err)
	}
}
