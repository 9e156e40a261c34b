package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/auth"
	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// Валидный bcrypt-хеш случайной строки. Используется при логине с
// неизвестным email, чтобы ветка "пользователь не найден" тратила
// столько же времени на сравнение, сколько и ветка с неверным паролем.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	jwtSecret   []byte
	tokenTTL    time.Duration
	logger      *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(userStorage ports.UserStorage, jwtSecret []byte, tokenTTL time.Duration, logger *slog.Logger) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (uc *authUseCase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
	}

	user, err := uc.userStorage.CreateUser(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("usecase: ошибка создания пользователя: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login проверяет пароль и выпускает токен с идентификатором пользователя.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// выравниваем время ответа с веткой неверного пароля
			auth.CheckPassword(password, dummyPasswordHash)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("usecase: ошибка поиска пользователя: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, uc.jwtSecret, uc.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Authenticate разбирает токен и резолвит пользователя из хранилища.
// Токен на удалённого пользователя недействителен, даже если срок не истёк.
func (uc *authUseCase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := auth.GetUserIDFromToken(token, uc.jwtSecret)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("usecase: ошибка резолва пользователя: %w", err)
	}

	return user, nil
}

// DeleteAccount удаляет пользователя и каскадно все его контакты.
func (uc *authUseCase) DeleteAccount(ctx context.Context, userID int64) error {
	if err := uc.userStorage.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("usecase: ошибка удаления пользователя: %w", err)
	}

	uc.logger.Info("account deleted", "user_id", userID)
	return nil
}
