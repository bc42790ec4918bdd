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

// MerchantHandler - операции стороны мерчанта: лента заказов магазина,
// переходы статусов и погашение кодов на стойке.
type MerchantHandler struct {
	orderSvs        OrderServicer
	verificationSvs VerificationServicer
}

func NewMerchantHandler(orderSvs OrderServicer, verificationSvs VerificationServicer) *MerchantHandler {
	return &MerchantHandler{
		orderSvs:        orderSvs,
		verificationSvs: verificationSvs,
	}
}

// Index GET RouteGroup + MerchantGroup + MerchantOrdersRoute. Заказы магазина
// сотрудника, опционально отфильтрованные по статусу.
func (m *MerchantHandler) Index(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		storeID = getStoreIDFromContext(c)
	}
	if storeID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	orders, err := m.orderSvs.ListForStore(reqCtx, storeID, domain.OrderStatusType(c.Query("status")))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, response)
}

// Accept POST RouteGroup + MerchantGroup + MerchantAcceptRoute.
func (m *MerchantHandler) Accept(c *gin.Context) {
	m.transition(c, m.orderSvs.Accept)
}

// Complete POST RouteGroup + MerchantGroup + MerchantCompleteRoute.
func (m *MerchantHandler) Complete(c *gin.Context) {
	m.transition(c, m.orderSvs.Complete)
}

// Refund POST RouteGroup + MerchantGroup + MerchantRefundRoute.
func (m *MerchantHandler) Refund(c *gin.Context) {
	m.transition(c, m.orderSvs.Refund)
}

func (m *MerchantHandler) transition(
	c *gin.Context,
	call func(ctx context.Context, orderID string) (*domain.Order, error),
) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, err := call(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type VerifyParams struct {
	Code    string `binding:"required,max=20" json:"code"`
	StoreID string `json:"store_id"`
}

// Verify POST RouteGroup + MerchantGroup + MerchantVerifyRoute. Погашение
// заказа по полному id или суточному номеру. Магазин берется из токена
// сотрудника, если не передан явно.
func (m *MerchantHandler) Verify(c *gin.Context) {
	var params VerifyParams
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

	storeID := params.StoreID
	if storeID == "" {
		storeID = getStoreIDFromContext(c)
	}
	if storeID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, err := m.verificationSvs.Verify(reqCtx, service.VerifyArgs{
		Code:    params.Code,
		StoreID: storeID,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
