package services

import "errors"

// Общие ошибки сервисов. Контроллеры подбирают HTTP-статус через errors.Is.
var (
	ErrValidation      = errors.New("validation error") // 400
	ErrUnauthenticated = errors.New("unauthenticated")  // 401
	ErrForbidden       = errors.New("forbidden")        // 403
	ErrNotFound        = errors.New("not found")        // 404
	ErrConflict        = errors.New("conflict")         // 409
)
