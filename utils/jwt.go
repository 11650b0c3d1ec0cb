package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Ошибки проверки токена
var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSubject = errors.New("token has no subject")
)

const defaultExpireMinutes = 60

// jwtSecret возвращает секретный ключ для подписи. В продакшене задаётся
// через CT_SECRET_KEY, иначе используется dev-значение.
func jwtSecret() []byte {
	if secret := os.Getenv("CT_SECRET_KEY"); secret != "" {
		return []byte(secret)
	}
	return []byte("dev-secret-change-me")
}

// TokenTTL возвращает срок действия токена из CT_ACCESS_EXPIRE_MIN (в минутах)
func TokenTTL() time.Duration {
	if v := os.Getenv("CT_ACCESS_EXPIRE_MIN"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultExpireMinutes * time.Minute
}

// GenerateJWT — генерирует JWT токен для пользователя.
// Срок действия зашит в сам токен, на сервере ничего не хранится.
func GenerateJWT(username string) (string, error) {
	return GenerateJWTWithTTL(username, TokenTTL())
}

// GenerateJWTWithTTL — генерирует токен с явным сроком действия
func GenerateJWTWithTTL(username string, ttl time.Duration) (string, error) {
	now := time.Now()

	// Создаем claims токена
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	// Создаем токен и подписываем секретным ключом
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken — проверяет подпись и срок действия токена и
// возвращает субъект (имя пользователя)
func ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
