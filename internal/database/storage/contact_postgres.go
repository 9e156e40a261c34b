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
)

// ContactStorage реализует интерфейс ports.ContactStorage поверх PostgreSQL.
// Каждый запрос дополнительно фильтруется по user_id, поэтому чужой контакт
// для вызывающего неотличим от несуществующего.
type ContactStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewContactStorage создает новый экземпляр ContactStorage
func NewContactStorage(db *sqlx.DB, logger *slog.Logger) *ContactStorage {
	return &ContactStorage{db: db, logger: logger}
}

// CreateContact сохраняет новый контакт; владелец уже выставлен в contact.UserID.
func (s *ContactStorage) CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	err := s.db.QueryRowxContext(ctx, `
        INSERT INTO contacts (name, phone, email, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, contact.Name, contact.Phone, contact.Email, contact.UserID, contact.CreatedAt, contact.UpdatedAt).Scan(&contact.ID)

	if err != nil {
		s.logger.Error("failed to insert contact", "user_id", contact.UserID, "error", err)
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	return contact, nil
}

// ListContacts возвращает контакты пользователя, отсортированные по имени
// по возрастанию, со смещением и лимитом для пагинации.
func (s *ContactStorage) ListContacts(ctx context.Context, userID int64, skip, limit int) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	err := s.db.SelectContext(ctx, &contacts, `
        SELECT * FROM contacts
        WHERE user_id = $1
        ORDER BY name ASC
        OFFSET $2 LIMIT $3
    `, userID, skip, limit)

	if err != nil {
		s.logger.Error("failed to list contacts", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// GetContact получает контакт по id в пределах владельца.
func (s *ContactStorage) GetContact(ctx context.Context, id, userID int64) (*domain.Contact, error) {
	var contact domain.Contact
	err := s.db.GetContext(ctx, &contact, `
        SELECT * FROM contacts WHERE id = $1 AND user_id = $2
    `, id, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to select contact", "contact_id", id, "user_id", userID, "error", err)
		return nil, fmt.Errorf("select contact: %w", err)
	}

	return &contact, nil
}

// UpdateContact целиком заменяет имя, телефон и email контакта владельца.
func (s *ContactStorage) UpdateContact(ctx context.Context, id, userID int64, input domain.ContactInput) (*domain.Contact, error) {
	var contact domain.Contact
	err := s.db.GetContext(ctx, &contact, `
        UPDATE contacts
        SET name = $1, phone = $2, email = $3, updated_at = $4
        WHERE id = $5 AND user_id = $6
        RETURNING *
    `, input.Name, input.Phone, input.Email, time.Now(), id, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to update contact", "contact_id", id, "user_id", userID, "error", err)
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return &contact, nil
}

// DeleteContact удаляет контакт владельца. Повторное удаление даёт ErrNotFound.
func (s *ContactStorage) DeleteContact(ctx context.Context, id, userID int64) error {
	res, err := s.db.ExecContext(ctx, `
        DELETE FROM contacts WHERE id = $1 AND user_id = $2
    `, id, userID)

	if err != nil {
		s.logger.Error("failed to delete contact", "contact_id", id, "user_id", userID, "error", err)
		return fmt.Errorf("delete contact: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
