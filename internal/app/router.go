package app

import (
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/handler"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает маршруты API. Вынесен отдельно от запуска сервера,
// чтобы тесты могли гонять запросы через httptest без сети.
func NewRouter(
	authUseCase usecase.AuthUseCase,
	contactUseCase usecase.ContactUseCase,
	requestTimeout time.Duration,
	logger *slog.Logger,
) chi.Router {
	authHandler := handler.NewAuthHandler(authUseCase, logger)
	contactHandler := handler.NewContactHandler(contactUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/", handler.Welcome(logger))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(handler.Authenticate(authUseCase, logger))
			r.Delete("/me", authHandler.DeleteAccount)
		})
	})

	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(handler.Authenticate(authUseCase, logger))

		r.Post("/", contactHandler.Create)
		r.Get("/", contactHandler.List)
		r.Get("/{contactID}", contactHandler.Get)
		r.Put("/{contactID}", contactHandler.Update)
		r.Delete("/{contactID}", contactHandler.Delete)
	})

	return r
}
