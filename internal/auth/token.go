package auth

import (
	"strconv"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims — стандартные утверждения JWT; идентификатор пользователя
// хранится в Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken выпускает подписанный HS256 токен для пользователя
// со сроком действия validityDuration от текущего момента.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken проверяет подпись и срок действия токена и возвращает
// идентификатор пользователя. Любой дефект токена — неверная подпись,
// битый payload, истёкший срок — даёт domain.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, domain.ErrInvalidToken
	}

	if !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}

	return userID, nil
}
