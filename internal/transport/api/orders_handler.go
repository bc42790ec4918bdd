package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/service"
)

type OrdersHandler struct {
	orderSvs   OrderServicer
	paymentSvs PaymentServicer
}

func NewOrdersHandler(orderSvs OrderServicer, paymentSvs PaymentServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:   orderSvs,
		paymentSvs: paymentSvs,
	}
}

type OrderItemParams struct {
	ItemID    string           `binding:"required"      json:"item_id"`
	Quantity  int32            `binding:"required,gt=0" json:"quantity"`
	Specs     []map[string]any `json:"specs"`
	Modifiers []map[string]any `json:"modifiers"`
}

type OrderCreateParams struct {
	StoreID           string            `binding:"required"             json:"store_id"`
	UserID            string            `binding:"required"             json:"user_id"`
	Scene             string            `binding:"required,order_scene" json:"scene"`
	TableCode         string            `json:"table_code"`
	Remark            string            `json:"remark"`
	CouponID          string            `json:"coupon_id"`
	DirectAmountCents int64             `binding:"omitempty,gt=0"       json:"direct_amount_cents"`
	DeliveryInfo      map[string]any    `json:"delivery_info"`
	Items             []OrderItemParams `json:"items"`
}

type OrderItemResponse struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int32  `json:"quantity"`
}

type OrderResponse struct {
	ID                string                 `json:"id"`
	StoreID           string                 `json:"store_id"`
	Scene             domain.OrderScene      `json:"scene"`
	Status            domain.OrderStatusType `json:"status"`
	SeqNo             string                 `json:"seq_no,omitempty"`
	TableCode         string                 `json:"table_code,omitempty"`
	PriceTotalCents   int64                  `json:"price_total_cents"`
	PricePayableCents int64                  `json:"price_payable_cents"`
	Items             []OrderItemResponse    `json:"items,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	CompletedAt       *time.Time             `json:"completed_at,omitempty"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, it := range order.Items {
		items[i] = OrderItemResponse{
			ItemID:     it.ItemID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		}
	}
	resp := OrderResponse{
		ID:                order.ID,
		StoreID:           order.StoreID,
		Scene:             order.Scene,
		Status:            order.Status,
		SeqNo:             order.SeqNo,
		TableCode:         order.TableCode,
		PriceTotalCents:   order.PriceTotalCents,
		PricePayableCents: order.PricePayableCents,
		Items:             items,
		CreatedAt:         order.CreatedAt,
	}
	if !order.CompletedAt.IsZero() {
		completedAt := order.CompletedAt
		resp.CompletedAt = &completedAt
	}
	return resp
}

// Create POST RouteGroup + OrdersRoute. Создает заказ; тенант определяется
// магазином из тела запроса.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params OrderCreateParams
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

	items := make([]service.CreateOrderItem, len(params.Items))
	for i, it := range params.Items {
		items[i] = service.CreateOrderItem{
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			Specs:     it.Specs,
			Modifiers: it.Modifiers,
		}
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, createErr := o.orderSvs.Create(reqCtx, service.CreateOrderArgs{
		StoreID:           params.StoreID,
		UserID:            params.UserID,
		Scene:             domain.OrderScene(params.Scene),
		TableCode:         params.TableCode,
		Remark:            params.Remark,
		CouponID:          params.CouponID,
		DirectAmountCents: params.DirectAmountCents,
		DeliveryInfo:      params.DeliveryInfo,
		Items:             items,
	})
	if createErr != nil {
		abortWithDomainError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(order))
}

// Index GET RouteGroup + OrdersRoute. Заказы пользователя, свежие первыми,
// опционально отфильтрованные по статусу.
func (o *OrdersHandler) Index(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.GetByUser(reqCtx, userID, domain.OrderStatusType(c.Query("status")))
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

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type OrderPayParams struct {
	UserID  string `binding:"required" json:"user_id"`
	Channel string `binding:"required,oneof=WALLET WX_JSAPI" json:"channel"`
}

// Pay POST RouteGroup + OrderPayRoute. Оплата заказа кошельком или внешним
// каналом.
func (o *OrdersHandler) Pay(c *gin.Context) {
	var params OrderPayParams
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

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, payErr := o.paymentSvs.Pay(reqCtx, service.PayOrderArgs{
		OrderID: c.Param("id"),
		UserID:  params.UserID,
		Channel: domain.PaymentChannel(params.Channel),
	})
	if payErr != nil {
		abortWithDomainError(c, payErr)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Prepay POST RouteGroup + OrderPrepayRoute. Возвращает параметры платежного
// виджета внешнего шлюза.
func (o *OrdersHandler) Prepay(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	params, err := o.paymentSvs.Prepay(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

type PaymentResponse struct {
	ID          string                   `json:"id"`
	OrderID     string                   `json:"order_id"`
	AmountCents int64                    `json:"amount_cents"`
	Status      domain.PaymentStatusType `json:"status"`
	Channel     domain.PaymentChannel    `json:"channel"`
	CreatedAt   time.Time                `json:"created_at"`
}

// Payments GET RouteGroup + OrderPaymentsRoute. История оплат заказа.
func (o *OrdersHandler) Payments(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	payments, err := o.paymentSvs.History(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = PaymentResponse{
			ID:          p.ID,
			OrderID:     p.OrderID,
			AmountCents: p.AmountCents,
			Status:      p.Status,
			Channel:     p.Channel,
			CreatedAt:   p.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type OrderReviewParams struct {
	UserID  string `binding:"required"              json:"user_id"`
	Rating  int32  `binding:"required,min=1,max=5"  json:"rating"`
	Content string `binding:"max=2000"              json:"content"`
}

// Review POST RouteGroup + OrderReviewRoute. Отзыв владельца к завершенному
// заказу.
func (o *OrdersHandler) Review(c *gin.Context) {
	var params OrderReviewParams
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

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	review, reviewErr := o.orderSvs.Review(reqCtx, service.ReviewOrderArgs{
		OrderID: c.Param("id"),
		UserID:  params.UserID,
		Rating:  params.Rating,
		Content: params.Content,
	})
	if reviewErr != nil {
		abortWithDomainError(c, reviewErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": review.OrderID,
		"rating":   review.Rating,
		"content":  review.Content,
	})
}

// ShowReview GET RouteGroup + OrderReviewRoute. Отзыв к заказу, если оставлен.
func (o *OrdersHandler) ShowReview(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	review, err := o.orderSvs.GetReview(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id": review.OrderID,
		"rating":   review.Rating,
		"content":  review.Content,
	})
}
