package usecase

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// AuthUseCase определяет интерфейс бизнес-логики аутентификации.
type AuthUseCase interface {
	// Register создаёт нового пользователя. Хранится только bcrypt-хеш пароля.
	// Повторный email даёт domain.ErrDuplicateEmail.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login проверяет учётные данные и выпускает токен доступа.
	// Неизвестный email и неверный пароль дают один и тот же
	// domain.ErrInvalidCredentials, чтобы нельзя было перебрать адреса.
	Login(ctx context.Context, email, password string) (string, error)

	// Authenticate проверяет токен и возвращает его владельца.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// DeleteAccount удаляет пользователя вместе со всеми его контактами.
	DeleteAccount(ctx context.Context, userID int64) error
}
