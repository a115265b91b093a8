package stripe

import (
	"errors"
	"fmt"
)

// ErrUnavailable — шлюз недоступен: транспортная ошибка, таймаут
// или 5xx/429 после исчерпания ретраев.
var ErrUnavailable = errors.New("stripe unavailable")

// Error — ошибка уровня API: шлюз ответил, но отказал.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("stripe: %d %s: %s", e.StatusCode, e.Code, e.Message)
}
