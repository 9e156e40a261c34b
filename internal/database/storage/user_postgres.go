package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения.
const pgUniqueViolation = "23505"

// UserStorage реализует интерфейс ports.UserStorage поверх PostgreSQL
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser сохраняет нового пользователя.
// Конфликт по email транслируется в domain.ErrDuplicateEmail.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := s.db.QueryRowxContext(ctx, `
        INSERT INTO users (email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			s.logger.Warn("duplicate email on registration", "email", user.Email)
			return nil, domain.ErrDuplicateEmail
		}
		s.logger.Error("failed to insert user", "error", err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// GetUserByEmail получает пользователя по email.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to select user by email", "error", err)
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	return &user, nil
}

// GetUserByID получает пользователя по внутреннему идентификатору.
func (s *UserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to select user by id", "user_id", id, "error", err)
		return nil, fmt.Errorf("select user by id: %w", err)
	}

	return &user, nil
}

// DeleteUser удаляет пользователя и все его контакты в одной транзакции.
// Внешний ключ в схеме тоже объявлен каскадным, но удаление здесь явное:
// сначала контакты, затем сам пользователь.
func (s *UserStorage) DeleteUser(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE user_id = $1`, id); err != nil {
		s.logger.Error("failed to delete user contacts", "user_id", id, "error", err)
		return fmt.Errorf("delete user contacts: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.logger.Info("user deleted with contacts", "user_id", id)
	return nil
}
