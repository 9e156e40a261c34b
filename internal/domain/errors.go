// internal/domain/errors.go
package domain

import "errors"

// Доменные ошибки. Хендлеры сопоставляют их с HTTP-статусами,
// всё остальное уходит наверх как внутренняя ошибка сервера.
var (
	// ErrNotFound — ресурс не существует либо принадлежит другому пользователю.
	// Эти два случая намеренно неразличимы для вызывающего.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail — email уже занят при регистрации.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials — единый ответ на неизвестный email и на неверный пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken — подпись неверна, payload повреждён или срок действия истёк.
	ErrInvalidToken = errors.New("invalid token")
)
