package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// contactUseCase implements ContactUseCase
type contactUseCase struct {
	contactStorage ports.ContactStorage
	logger         *slog.Logger
}

// NewContactUseCase создает новый экземпляр ContactUseCase
func NewContactUseCase(contactStorage ports.ContactStorage, logger *slog.Logger) ContactUseCase {
	return &contactUseCase{
		contactStorage: contactStorage,
		logger:         logger,
	}
}

// CreateContact создаёт контакт от имени пользователя userID.
func (uc *contactUseCase) CreateContact(ctx context.Context, userID int64, input domain.ContactInput) (*domain.Contact, error) {
	contact, err := uc.contactStorage.CreateContact(ctx, &domain.Contact{
		Name:   input.Name,
		Phone:  input.Phone,
		Email:  input.Email,
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания контакта: %w", err)
	}

	uc.logger.Info("contact created", "contact_id", contact.ID, "user_id", userID)
	return contact, nil
}

// ListContacts нормализует параметры пагинации и читает страницу контактов.
func (uc *contactUseCase) ListContacts(ctx context.Context, userID int64, skip, limit int) ([]domain.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	contacts, err := uc.contactStorage.ListContacts(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения списка контактов: %w", err)
	}

	return contacts, nil
}

// GetContact возвращает контакт пользователя по id.
func (uc *contactUseCase) GetContact(ctx context.Context, id, userID int64) (*domain.Contact, error) {
	contact, err := uc.contactStorage.GetContact(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("usecase: ошибка получения контакта: %w", err)
	}

	return contact, nil
}

// UpdateContact целиком заменяет изменяемые поля контакта пользователя.
func (uc *contactUseCase) UpdateContact(ctx context.Context, id, userID int64, input domain.ContactInput) (*domain.Contact, error) {
	contact, err := uc.contactStorage.UpdateContact(ctx, id, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("usecase: ошибка обновления контакта: %w", err)
	}

	uc.logger.Info("contact updated", "contact_id", id, "user_id", userID)
	return contact, nil
}

// DeleteContact удаляет контакт пользователя.
func (uc *contactUseCase) DeleteContact(ctx context.Context, id, userID int64) error {
	if err := uc.contactStorage.DeleteContact(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("usecase: ошибка удаления контакта: %w", err)
	}

	uc.logger.Info("contact deleted", "contact_id", id, "user_id", userID)
	return nil
}
