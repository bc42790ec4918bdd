package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-orders/internal/service/tokens"
	"github.com/fsdevblog/groph-orders/internal/tenant"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey  = "currentUserID"
	CurrentStoreIDKey = "currentStoreID"
	CurrentRoleKey    = "currentRole"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет
// его. Если токен не передан, вернется ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.MerchantClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateMerchantJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован сотрудником мерчанта.
// Записывает в контекст gin идентификаторы из claims, а tenant_id из токена -
// в контекст запроса: авторизованный запрос всегда привязан к тенанту токена,
// какие бы идентификаторы ни пришли в query.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}

		c.Set(CurrentUserIDKey, claims.UserID)
		c.Set(CurrentStoreIDKey, claims.StoreID)
		c.Set(CurrentRoleKey, claims.Role)
		c.Set(TenantIDKey, claims.TenantID)
		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), claims.TenantID))
		c.Next()
	}
}
