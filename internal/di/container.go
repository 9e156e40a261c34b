package di

import (
	"github.com/GoArmGo/ContactsApp/internal/app"
	"github.com/GoArmGo/ContactsApp/internal/config"
	"github.com/GoArmGo/ContactsApp/internal/database/postgres"
	"github.com/GoArmGo/ContactsApp/internal/database/storage"
	"github.com/GoArmGo/ContactsApp/internal/logger"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Подключение к PostgreSQL и миграции
	dbClient, err := postgres.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	contactStorage := storage.NewContactStorage(dbClient.DB, slogger)

	// 4. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, []byte(cfg.JWTSecret), cfg.TokenTTL, slogger)
	contactUseCase := usecase.NewContactUseCase(contactStorage, slogger)

	// 5. Сборка итогового приложения
	application := app.NewApp(cfg, slogger, dbClient.DB, authUseCase, contactUseCase)

	slogger.Info("dependencies initialized")
	return application, nil
}
