package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/auth"
	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// --- helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStorage — хранилище пользователей в памяти для тестов usecase.
type fakeUserStorage struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[int64]*domain.User{}}
}

func (f *fakeUserStorage) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStorage) DeleteUser(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func newAuthUC(storage *fakeUserStorage) AuthUseCase {
	return NewAuthUseCase(storage, []byte("test-secret"), time.Hour, discardLogger())
}

// --- tests ---

func TestAuthUseCase_Register_DuplicateEmail(t *testing.T) {
	uc := newAuthUC(newFakeUserStorage())
	ctx := context.Background()

	user, err := uc.Register(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("raw password stored instead of hash")
	}

	_, err = uc.Register(ctx, "a@example.com", "другой")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected domain.ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthUseCase_Login_RoundTrip(t *testing.T) {
	storage := newFakeUserStorage()
	uc := newAuthUC(storage)
	ctx := context.Background()

	user, err := uc.Register(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := uc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("token from Login rejected: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token subject mismatch: got %d want %d", userID, user.ID)
	}

	got, err := uc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("Authenticate resolved wrong user: got %d want %d", got.ID, user.ID)
	}
}

// Неизвестный email и неверный пароль обязаны давать одну и ту же ошибку,
// иначе по ответам можно перебирать зарегистрированные адреса.
func TestAuthUseCase_Login_UniformFailure(t *testing.T) {
	uc := newAuthUC(newFakeUserStorage())
	ctx := context.Background()

	if _, err := uc.Register(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errUnknown := uc.Login(ctx, "missing@example.com", "pw")
	_, errWrongPw := uc.Login(ctx, "a@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected domain.ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected domain.ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthUseCase_Authenticate_DeletedUser(t *testing.T) {
	storage := newFakeUserStorage()
	uc := newAuthUC(storage)
	ctx := context.Background()

	user, err := uc.Register(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	token, err := uc.Login(ctx, "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := uc.DeleteAccount(ctx, user.ID); err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}

	// токен ещё не истёк, но пользователя уже нет
	_, err = uc.Authenticate(ctx, token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken, got %v", err)
	}
}

func TestAuthUseCase_Authenticate_Garbage(t *testing.T) {
	uc := newAuthUC(newFakeUserStorage())

	_, err := uc.Authenticate(context.Background(), "not-a-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken, got %v", err)
	}
}
