// Package tenant прокидывает идентификатор тенанта через context.Context.
// Значение неизменяемое: WithTenant возвращает производный контекст, поэтому
// вложенный override не виден снаружи и "восстанавливается" на любом пути
// выхода без дополнительного кода.
package tenant

import "context"

type ctxKey struct{}

// WithTenant возвращает контекст с установленным идентификатором тенанта.
// Используется middleware'ом и сервисами, якорящими тенанта по магазину.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// FromContext возвращает идентификатор текущего тенанта. Если тенант не
// установлен, вызывающий обязан отработать по принципу fail closed: пустой
// результат, но никогда не "все тенанты".
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
