package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/service"
)

type AuthHandler struct {
	merchantSvs MerchantUserServicer
}

func NewAuthHandler(merchantSvs MerchantUserServicer) *AuthHandler {
	return &AuthHandler{
		merchantSvs: merchantSvs,
	}
}

type MerchantLoginParams struct {
	Username string `binding:"required,min=1,max=30"  json:"username"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

type MerchantUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	StoreID  string `json:"store_id,omitempty"`
	Role     string `json:"role"`
}

// Login POST RouteGroup + MerchantGroup + MerchantLoginRoute. Аутентификация
// сотрудника мерчанта по паре логин/пароль. Тенант обязан быть разрешен из
// запроса до логина.
func (h *AuthHandler) Login(c *gin.Context) {
	var params MerchantLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.merchantSvs.Login(ctx, service.LoginMerchantArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		abortWithDomainError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"user": MerchantUserResponse{
		ID:       user.ID,
		Username: user.Username,
		StoreID:  user.StoreID,
		Role:     user.Role,
	}})
}
