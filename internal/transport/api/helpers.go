package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/transport/api/middlewares"
)

// getStoreIDFromContext берет из контекста gin магазин текущего сотрудника
// мерчанта. Значение устанавливается в middlewares.AuthRequired; если его нет -
// вернется пустая строка.
func getStoreIDFromContext(c *gin.Context) string {
	raw, exist := c.Get(middlewares.CurrentStoreIDKey)
	if !exist {
		return ""
	}
	storeID, ok := raw.(string)
	if !ok {
		return ""
	}
	return storeID
}

// abortWithDomainError транслирует доменную ошибку в http статус. Вся
// таксономия ошибок ядра сходится в этой функции, хендлеры сами статусы не
// выбирают.
func abortWithDomainError(c *gin.Context, err error) {
	var invalidTransition *domain.InvalidTransitionError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrTenantMissing):
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("tenant required")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrValidation):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInsufficientBalance):
		_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("insufficient balance")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrStoreMismatch):
		_ = c.AbortWithError(http.StatusConflict, errors.New("order belongs to another store")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOrderAlreadyUsed):
		_ = c.AbortWithError(http.StatusConflict, errors.New("order already used")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOrderNotRedeemable):
		_ = c.AbortWithError(http.StatusConflict, errors.New("order is not redeemable")).
			SetType(gin.ErrorTypePublic)
	case errors.As(err, &invalidTransition):
		_ = c.AbortWithError(http.StatusConflict, invalidTransition).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDuplicateKey):
		c.AbortWithStatus(http.StatusConflict)
	case errors.Is(err, domain.ErrUpstream):
		c.AbortWithStatus(http.StatusBadGateway)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
	}
}
