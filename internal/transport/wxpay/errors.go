package wxpay

import (
	"fmt"

	"github.com/fsdevblog/groph-orders/internal/domain"
)

// StatusCodeError - шлюз ответил статусом, отличным от http.StatusOK.
// Разворачивается в domain.ErrUpstream: для вызывающего кода любая ошибка
// шлюза - ошибка внешней системы.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

func (e *StatusCodeError) Unwrap() error {
	return domain.ErrUpstream
}
