package usecase

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// Границы пагинации списка контактов. Лимит по умолчанию применяется,
// когда клиент его не передал; верхняя граница защищает от выгрузки
// всей таблицы одним запросом.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ContactUseCase определяет интерфейс бизнес-логики работы с контактами.
// Владелец каждой операции — аутентифицированный пользователь; контакт
// другого пользователя неотличим от несуществующего (domain.ErrNotFound).
type ContactUseCase interface {
	// CreateContact создаёт контакт; владельцем всегда становится userID,
	// что бы ни прислал клиент.
	CreateContact(ctx context.Context, userID int64, input domain.ContactInput) (*domain.Contact, error)

	// ListContacts возвращает контакты пользователя по возрастанию имени,
	// со смещением skip и лимитом limit (нормализуются к границам выше).
	ListContacts(ctx context.Context, userID int64, skip, limit int) ([]domain.Contact, error)

	// GetContact возвращает контакт пользователя по id.
	GetContact(ctx context.Context, id, userID int64) (*domain.Contact, error)

	// UpdateContact целиком заменяет все три изменяемых поля контакта.
	UpdateContact(ctx context.Context, id, userID int64, input domain.ContactInput) (*domain.Contact, error)

	// DeleteContact удаляет контакт; повторное удаление даёт ErrNotFound.
	DeleteContact(ctx context.Context, id, userID int64) error
}
