package ports

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя; повторный email даёт domain.ErrDuplicateEmail.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetUserByEmail ищет пользователя по email (ключ входа).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID ищет пользователя по внутреннему идентификатору.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// DeleteUser удаляет пользователя вместе со всеми его контактами
	// в одной транзакции (явный каскад).
	DeleteUser(ctx context.Context, id int64) error
}

// ContactStorage определяет методы для взаимодействия с хранилищем контактов.
// Все выборки и изменения ограничены владельцем: записи чужих пользователей
// неотличимы от несуществующих.
type ContactStorage interface {
	CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	ListContacts(ctx context.Context, userID int64, skip, limit int) ([]domain.Contact, error)
	GetContact(ctx context.Context, id, userID int64) (*domain.Contact, error)
	UpdateContact(ctx context.Context, id, userID int64, input domain.ContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id, userID int64) error
}
