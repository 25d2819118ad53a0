package models

import "errors"

// Таксономия ошибок домена. Слои оборачивают их через fmt.Errorf("...: %w", err),
// HTTP-слой сопоставляет их со статусами через errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
)
