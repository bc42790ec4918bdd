package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrPasswordMissMatch = errors.New("password mismatch")

	// ErrValidation - ошибка входных данных вызывающей стороны, состояние не меняется.
	ErrValidation = errors.New("validation error")

	// ErrTenantMissing - тенант не разрешим. Запрос обязан увидеть пустой
	// результат, а не все строки ("fail closed").
	ErrTenantMissing = errors.New("tenant missing")

	ErrInsufficientBalance = errors.New("insufficient balance")

	// Ошибки погашения кода (VerificationService).
	ErrStoreMismatch      = errors.New("order belongs to another store")
	ErrOrderAlreadyUsed   = errors.New("order already used")
	ErrOrderNotRedeemable = errors.New("order is not redeemable")

	// ErrUpstream - сбой внешнего платежного шлюза.
	ErrUpstream = errors.New("upstream gateway error")
)

// InvalidTransitionError возвращается когда state machine отклоняет переход.
// Статус заказа при этом не меняется.
type InvalidTransitionError struct {
	From OrderStatusType
	To   OrderStatusType
}

func NewInvalidTransitionError(from, to OrderStatusType) error {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition %s -> %s", e.From, e.To)
}
