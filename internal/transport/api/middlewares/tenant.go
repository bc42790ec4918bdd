package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/tenant"
)

const TenantIDKey = "currentTenantID"

// TenantResolver резолвит идентификатор тенанта из запроса в tenant_id.
type TenantResolver interface {
	Resolve(ctx context.Context, idOrSlug string) (string, error)
}

// Tenant извлекает идентификатор тенанта из запроса (заголовок X-Tenant-ID,
// затем query-параметры tenant_id и merchant_id), резолвит slug'и и кладет
// tenant_id в контекст запроса. Запросы без идентификатора пропускаются как
// есть: часть операций (создание заказа) якорит тенанта магазином, а не
// запросом, и сервисный слой сам откажет там, где тенант обязателен.
func Tenant(resolver TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		idOrSlug := c.GetHeader("X-Tenant-ID")
		if idOrSlug == "" {
			idOrSlug = c.Query("tenant_id")
		}
		if idOrSlug == "" {
			idOrSlug = c.Query("merchant_id")
		}
		if idOrSlug == "" {
			c.Next()
			return
		}

		tenantID, err := resolver.Resolve(c.Request.Context(), idOrSlug)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrTenantMissing) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown tenant"})
				return
			}
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), tenantID))
		c.Next()
	}
}
