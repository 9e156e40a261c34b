package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// AuthHandler — обработчик HTTP-запросов регистрации и входа.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: uc,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func decodeCredentials(r *http.Request) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	return &req, nil
}

// Register — регистрирует нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		h.logger.Warn("bad register request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.authUseCase.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			respondWithError(w, http.StatusBadRequest, "Email already registered", h.logger)
			return
		}
		h.logger.Error("failed to register user", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Registration failed", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

// Login — проверяет учётные данные и отдаёт токен доступа.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		h.logger.Warn("bad login request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	token, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password", h.logger)
			return
		}
		h.logger.Error("failed to log user in", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Login failed", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"}, h.logger)
}

// DeleteAccount — удаляет аутентифицированного пользователя
// вместе со всеми его контактами.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated", h.logger)
		return
	}

	if err := h.authUseCase.DeleteAccount(r.Context(), user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", h.logger)
			return
		}
		h.logger.Error("failed to delete account", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Account deletion failed", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
