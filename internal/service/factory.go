package service

import (
	"fmt"

	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type AppServices struct {
	TenantService       *TenantService
	OrderService        *OrderService
	PaymentService      *PaymentService
	WalletService       *WalletService
	VerificationService *VerificationService
	MemberService       *MemberService
	MerchantUserService *MerchantUserService
}

func Factory(
	unitOfWork uow.UOW,
	gateway PaymentGateway,
	jwtSecret []byte,
	psswd PasswordHasher,
) (*AppServices, error) {
	tenantService, tenantServiceErr := NewTenantService(unitOfWork)
	if tenantServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tenantServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, gateway)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork, gateway)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	verificationService, verificationServiceErr := NewVerificationService(unitOfWork)
	if verificationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", verificationServiceErr.Error())
	}

	memberService, memberServiceErr := NewMemberService(unitOfWork)
	if memberServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", memberServiceErr.Error())
	}

	merchantUserService, merchantUserServiceErr := NewMerchantUserService(unitOfWork, jwtSecret, psswd)
	if merchantUserServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", merchantUserServiceErr.Error())
	}

	return &AppServices{
		TenantService:       tenantService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		WalletService:       walletService,
		VerificationService: verificationService,
		MemberService:       memberService,
		MerchantUserService: merchantUserService,
	}, nil
}
