package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// ContactHandler — обработчик HTTP-запросов для работы с контактами.
// Все методы предполагают, что Authenticate уже положил пользователя
// в контекст запроса.
type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *slog.Logger
}

// NewContactHandler создаёт новый экземпляр ContactHandler.
func NewContactHandler(uc usecase.ContactUseCase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: uc,
		logger:         logger,
	}
}

func decodeContactInput(r *http.Request) (*domain.ContactInput, error) {
	var input domain.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, err
	}
	if input.Name == "" || input.Phone == "" || input.Email == "" {
		return nil, errors.New("name, phone and email are required")
	}
	return &input, nil
}

func contactIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
}

// Create — создаёт новый контакт текущего пользователя.
// Владелец всегда берётся из токена, а не из тела запроса.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	input, err := decodeContactInput(r)
	if err != nil {
		h.logger.Warn("bad create contact request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	contact, err := h.contactUseCase.CreateContact(r.Context(), user.ID, *input)
	if err != nil {
		h.logger.Error("failed to create contact", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create contact", h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, contact, h.logger)
}

// List — возвращает контакты текущего пользователя с пагинацией skip/limit.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	contacts, err := h.contactUseCase.ListContacts(r.Context(), user.ID, skip, limit)
	if err != nil {
		h.logger.Error("failed to list contacts", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list contacts", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, contacts, h.logger)
}

// Get — возвращает один контакт текущего пользователя.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := contactIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact id", h.logger)
		return
	}

	contact, err := h.contactUseCase.GetContact(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Contact not found", h.logger)
			return
		}
		h.logger.Error("failed to get contact", "contact_id", id, "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get contact", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, contact, h.logger)
}

// Update — целиком заменяет изменяемые поля контакта.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := contactIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact id", h.logger)
		return
	}

	input, err := decodeContactInput(r)
	if err != nil {
		h.logger.Warn("bad update contact request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	contact, err := h.contactUseCase.UpdateContact(r.Context(), id, user.ID, *input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Contact not found", h.logger)
			return
		}
		h.logger.Error("failed to update contact", "contact_id", id, "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update contact", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, contact, h.logger)
}

// Delete — удаляет контакт текущего пользователя.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := contactIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact id", h.logger)
		return
	}

	if err := h.contactUseCase.DeleteContact(r.Context(), id, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Contact not found", h.logger)
			return
		}
		h.logger.Error("failed to delete contact", "contact_id", id, "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to delete contact", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
