// internal/domain/contact.go
package domain

import (
	"time"
)

// Contact представляет запись контактной книги пользователя,
// соответствует таблице contacts в бд.
// UserID — владелец записи; все выборки фильтруются по нему.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContactInput — набор изменяемых полей контакта.
// Обновление всегда заменяет все три поля целиком, частичных обновлений нет.
type ContactInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
