package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/service/tokens"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const JWTTokenExpire = 12 * time.Hour

type MerchantUserService struct {
	uow            uow.UOW
	merchantRepo   MerchantUserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewMerchantUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*MerchantUserService, error) {
	merchantRepo, merchantRepoErr :=
		uow.GetRepositoryAs[MerchantUserRepository](u, uow.RepositoryName(repoargs.MerchantUserRepoName))
	if merchantRepoErr != nil {
		return nil, merchantRepoErr
	}
	return &MerchantUserService{
		uow:            u,
		merchantRepo:   merchantRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type LoginMerchantArgs struct {
	Username string
	Password string
}

// Login аутентифицирует сотрудника мерчанта. Возвращает 3 значения: сотрудник,
// jwt токен с зашитым tenant_id и ошибка. Неверный пароль возвращается как
// domain.ErrPasswordMissMatch.
func (s *MerchantUserService) Login(ctx context.Context, args LoginMerchantArgs) (*domain.MerchantUser, string, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, "", domain.ErrTenantMissing
	}

	user, userErr := s.merchantRepo.FindByUsername(ctx, tenantID, args.Username)
	if userErr != nil {
		return nil, "", fmt.Errorf("logging in merchant user: %w", userErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.PasswordHash) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateMerchantJWT(tokens.MerchantClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		StoreID:  user.StoreID,
		Role:     user.Role,
	}, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in merchant user: %w", tokenErr)
	}
	return user, token, nil
}
