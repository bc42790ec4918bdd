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

type WalletHandler struct {
	walletSvs WalletServicer
}

func NewWalletHandler(walletSvs WalletServicer) *WalletHandler {
	return &WalletHandler{
		walletSvs: walletSvs,
	}
}

type RechargeOrderResponse struct {
	ID          string                    `json:"id"`
	AmountCents int64                     `json:"amount_cents"`
	BonusCents  int64                     `json:"bonus_cents"`
	Status      domain.RechargeStatusType `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
	PaidAt      *time.Time                `json:"paid_at,omitempty"`
}

func newRechargeOrderResponse(recharge *domain.RechargeOrder) RechargeOrderResponse {
	resp := RechargeOrderResponse{
		ID:          recharge.ID,
		AmountCents: recharge.AmountCents,
		BonusCents:  recharge.BonusCents,
		Status:      recharge.Status,
		CreatedAt:   recharge.CreatedAt,
	}
	if !recharge.PaidAt.IsZero() {
		paidAt := recharge.PaidAt
		resp.PaidAt = &paidAt
	}
	return resp
}

// Balance GET RouteGroup + WalletBalanceRoute.
func (w *WalletHandler) Balance(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	balance, err := w.walletSvs.Balance(reqCtx, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance_cents": balance})
}

type RechargeParams struct {
	UserID      string `binding:"required"      json:"user_id"`
	AmountCents int64  `binding:"required,gt=0" json:"amount_cents"`
	Channel     string `binding:"required,oneof=WALLET WX_JSAPI" json:"channel"`
}

func bindRechargeParams(c *gin.Context) (*RechargeParams, bool) {
	var params RechargeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return nil, false
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return nil, false
	}
	return &params, true
}

// Recharge POST RouteGroup + RechargeRoute. Мгновенное пополнение: заявка
// создается и подтверждается одним запросом.
func (w *WalletHandler) Recharge(c *gin.Context) {
	params, ok := bindRechargeParams(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	recharge, err := w.walletSvs.Recharge(reqCtx, service.CreateRechargeArgs{
		UserID:      params.UserID,
		AmountCents: params.AmountCents,
		Channel:     domain.PaymentChannel(params.Channel),
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRechargeOrderResponse(recharge))
}

// CreateRechargeOrder POST RouteGroup + RechargeOrders. Двухфазное пополнение:
// заявка создается в CREATED и ждет подтверждения оплаты.
func (w *WalletHandler) CreateRechargeOrder(c *gin.Context) {
	params, ok := bindRechargeParams(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	recharge, err := w.walletSvs.CreateRechargeOrder(reqCtx, service.CreateRechargeArgs{
		UserID:      params.UserID,
		AmountCents: params.AmountCents,
		Channel:     domain.PaymentChannel(params.Channel),
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRechargeOrderResponse(recharge))
}

// ConfirmRecharge POST RouteGroup + RechargeConfirm. Идемпотентное
// подтверждение оплаты заявки.
func (w *WalletHandler) ConfirmRecharge(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	recharge, err := w.walletSvs.ConfirmRecharge(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRechargeOrderResponse(recharge))
}

// PrepayRecharge POST RouteGroup + RechargePrepay. Возвращает параметры
// платежного виджета внешнего шлюза для заявки на пополнение.
func (w *WalletHandler) PrepayRecharge(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	params, err := w.walletSvs.PrepayRecharge(reqCtx, c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

// RechargeOrders GET RouteGroup + RechargeOrders.
func (w *WalletHandler) RechargeOrders(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	list, err := w.walletSvs.ListRechargeOrders(reqCtx, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if len(list) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]RechargeOrderResponse, len(list))
	for i := range list {
		response[i] = newRechargeOrderResponse(&list[i])
	}
	c.JSON(http.StatusOK, response)
}
