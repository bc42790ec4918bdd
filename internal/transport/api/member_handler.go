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

type MemberHandler struct {
	memberSvs MemberServicer
}

func NewMemberHandler(memberSvs MemberServicer) *MemberHandler {
	return &MemberHandler{
		memberSvs: memberSvs,
	}
}

type MemberResponse struct {
	UserID   string `json:"user_id"`
	Phone    string `json:"phone,omitempty"`
	Nickname string `json:"nickname"`
	Points   int64  `json:"points"`
}

func newMemberResponse(member *domain.Member) MemberResponse {
	return MemberResponse{
		UserID:   member.UserID,
		Phone:    member.Phone,
		Nickname: member.Nickname,
		Points:   member.Points,
	}
}

// Profile GET RouteGroup + MemberRoute. Профиль создается лениво при первом
// обращении.
func (m *MemberHandler) Profile(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	member, err := m.memberSvs.Profile(reqCtx, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMemberResponse(member))
}

type BindPhoneParams struct {
	UserID string `binding:"required"              json:"user_id"`
	Phone  string `binding:"required,min=5,max=20" json:"phone"`
}

// BindPhone POST RouteGroup + MemberPhoneRoute.
func (m *MemberHandler) BindPhone(c *gin.Context) {
	var params BindPhoneParams
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

	member, err := m.memberSvs.BindPhone(reqCtx, params.UserID, params.Phone)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMemberResponse(member))
}

type UpdateProfileParams struct {
	UserID   string `binding:"required" json:"user_id"`
	Nickname string `binding:"max=30"   json:"nickname"`
}

// UpdateProfile POST RouteGroup + MemberProfileRoute.
func (m *MemberHandler) UpdateProfile(c *gin.Context) {
	var params UpdateProfileParams
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

	member, err := m.memberSvs.UpdateProfile(reqCtx, params.UserID, params.Nickname)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMemberResponse(member))
}

type AddressResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"is_default"`
}

func newAddressResponse(addr *domain.MemberAddress) AddressResponse {
	return AddressResponse{
		ID:        addr.ID,
		Name:      addr.Name,
		Phone:     addr.Phone,
		Address:   addr.Address,
		Detail:    addr.Detail,
		IsDefault: addr.IsDefault,
	}
}

// Addresses GET RouteGroup + MemberAddressesRoute. Адресная книга
// пользователя, свежие адреса первыми.
func (m *MemberHandler) Addresses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	addresses, err := m.memberSvs.ListAddresses(reqCtx, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]AddressResponse, len(addresses))
	for i := range addresses {
		response[i] = newAddressResponse(&addresses[i])
	}
	c.JSON(http.StatusOK, response)
}

type CreateAddressParams struct {
	UserID    string `binding:"required"         json:"user_id"`
	Name      string `binding:"required,max=64"  json:"name"`
	Phone     string `binding:"required,max=20"  json:"phone"`
	Address   string `binding:"required,max=256" json:"address"`
	Detail    string `binding:"max=256"          json:"detail"`
	IsDefault bool   `json:"is_default"`
}

// CreateAddress POST RouteGroup + MemberAddressesRoute.
func (m *MemberHandler) CreateAddress(c *gin.Context) {
	var params CreateAddressParams
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

	addr, err := m.memberSvs.CreateAddress(reqCtx, service.CreateAddressArgs{
		UserID:    params.UserID,
		Name:      params.Name,
		Phone:     params.Phone,
		Address:   params.Address,
		Detail:    params.Detail,
		IsDefault: params.IsDefault,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAddressResponse(addr))
}

// UpdateAddressParams - частичное обновление: отсутствующие поля не меняются.
type UpdateAddressParams struct {
	UserID    string  `binding:"required"                   json:"user_id"`
	Name      *string `binding:"omitempty,min=1,max=64"     json:"name"`
	Phone     *string `binding:"omitempty,min=5,max=20"     json:"phone"`
	Address   *string `binding:"omitempty,min=1,max=256"    json:"address"`
	Detail    *string `binding:"omitempty,max=256"          json:"detail"`
	IsDefault *bool   `json:"is_default"`
}

// UpdateAddress PUT RouteGroup + MemberAddressRoute.
func (m *MemberHandler) UpdateAddress(c *gin.Context) {
	var params UpdateAddressParams
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

	addr, err := m.memberSvs.UpdateAddress(reqCtx, service.UpdateAddressArgs{
		AddressID: c.Param("id"),
		UserID:    params.UserID,
		Name:      params.Name,
		Phone:     params.Phone,
		Address:   params.Address,
		Detail:    params.Detail,
		IsDefault: params.IsDefault,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAddressResponse(addr))
}

// DeleteAddress DELETE RouteGroup + MemberAddressRoute.
func (m *MemberHandler) DeleteAddress(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if err := m.memberSvs.DeleteAddress(reqCtx, userID, c.Param("id")); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
