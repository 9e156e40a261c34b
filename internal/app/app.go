package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/ContactsApp/internal/config"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// App агрегирует зависимости приложения и управляет его жизненным циклом.
type App struct {
	Config         *config.Config
	logger         *slog.Logger
	db             *sqlx.DB
	authUseCase    usecase.AuthUseCase
	contactUseCase usecase.ContactUseCase
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	authUseCase usecase.AuthUseCase,
	contactUseCase usecase.ContactUseCase) *App {
	return &App{
		Config:         cfg,
		logger:         logger,
		db:             db,
		authUseCase:    authUseCase,
		contactUseCase: contactUseCase,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := NewRouter(a.authUseCase, a.contactUseCase, a.Config.RequestTimeout, a.logger)

	err := runServer(ctx, a.Config, router, a.logger)

	// аккуратно закрываем ресурсы независимо от исхода
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
