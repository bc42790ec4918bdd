package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type MemberService struct {
	uow         uow.UOW
	memberRepo  MemberRepository
	addressRepo MemberAddressRepository
}

func NewMemberService(u uow.UOW) (*MemberService, error) {
	memberRepo, memberRepoErr := uow.GetRepositoryAs[MemberRepository](u, uow.RepositoryName(repoargs.MemberRepoName))
	if memberRepoErr != nil {
		return nil, memberRepoErr
	}
	addressRepo, addressRepoErr :=
		uow.GetRepositoryAs[MemberAddressRepository](u, uow.RepositoryName(repoargs.MemberAddressRepoName))
	if addressRepoErr != nil {
		return nil, addressRepoErr
	}
	return &MemberService{
		uow:         u,
		memberRepo:  memberRepo,
		addressRepo: addressRepo,
	}, nil
}

// Profile возвращает профиль участника, лениво создавая его при первом
// обращении со сгенерированным никнеймом.
func (m *MemberService) Profile(ctx context.Context, userID string) (*domain.Member, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	member, err := m.memberRepo.Get(ctx, tenantID, userID)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}

	member, upsertErr := m.memberRepo.Upsert(ctx, tenantID, repoargs.MemberUpsert{
		UserID:   userID,
		Nickname: generatedNickname(),
	})
	if upsertErr != nil {
		return nil, fmt.Errorf("creating member profile: %w", upsertErr)
	}
	return member, nil
}

// BindPhone привязывает номер телефона к профилю участника.
func (m *MemberService) BindPhone(ctx context.Context, userID, phone string) (*domain.Member, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	if strings.TrimSpace(phone) == "" {
		return nil, domain.ErrValidation
	}

	member, err := m.memberRepo.Upsert(ctx, tenantID, repoargs.MemberUpsert{
		UserID: userID,
		Phone:  phone,
	})
	if err != nil {
		return nil, fmt.Errorf("binding phone: %w", err)
	}
	return member, nil
}

// UpdateProfile обновляет никнейм участника. Пустой никнейм заменяется
// сгенерированным.
func (m *MemberService) UpdateProfile(ctx context.Context, userID, nickname string) (*domain.Member, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	if strings.TrimSpace(nickname) == "" {
		nickname = generatedNickname()
	}

	member, err := m.memberRepo.Upsert(ctx, tenantID, repoargs.MemberUpsert{
		UserID:   userID,
		Nickname: nickname,
	})
	if err != nil {
		return nil, fmt.Errorf("updating member profile: %w", err)
	}
	return member, nil
}

func generatedNickname() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// ListAddresses возвращает адресную книгу пользователя, свежие адреса первыми.
func (m *MemberService) ListAddresses(ctx context.Context, userID string) ([]domain.MemberAddress, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	addresses, err := m.addressRepo.ListByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	return addresses, nil
}

type CreateAddressArgs struct {
	UserID    string
	Name      string
	Phone     string
	Address   string
	Detail    string
	IsDefault bool
}

// CreateAddress добавляет адрес в книгу пользователя. Книга ограничена
// domain.MaxMemberAddresses записями; новый адрес по умолчанию снимает флаг
// с прежнего. Обе проверки выполняются в одной транзакции.
func (m *MemberService) CreateAddress(ctx context.Context, args CreateAddressArgs) (*domain.MemberAddress, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	addr := &domain.MemberAddress{
		ID:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		TenantID:  tenantID,
		UserID:    args.UserID,
		Name:      args.Name,
		Phone:     args.Phone,
		Address:   args.Address,
		Detail:    args.Detail,
		IsDefault: args.IsDefault,
	}
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[MemberAddressRepository](tx, uow.RepositoryName(repoargs.MemberAddressRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		count, countErr := repo.CountByUser(c, tenantID, args.UserID)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count >= domain.MaxMemberAddresses {
			return fmt.Errorf("address book is full: %w", domain.ErrValidation)
		}

		if addr.IsDefault {
			if clearErr := repo.ClearDefault(c, tenantID, args.UserID, addr.ID); clearErr != nil {
				return clearErr //nolint:wrapcheck
			}
		}
		return repo.Create(c, tenantID, addr) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating address: %w", txErr)
	}
	return addr, nil
}

// UpdateAddressArgs - частичное обновление адреса: nil-поля не меняются.
type UpdateAddressArgs struct {
	AddressID string
	UserID    string
	Name      *string
	Phone     *string
	Address   *string
	Detail    *string
	IsDefault *bool
}

// UpdateAddress обновляет адрес владельца. Чужой адрес неотличим от
// отсутствующего. Установка адреса по умолчанию снимает флаг с остальных.
func (m *MemberService) UpdateAddress(ctx context.Context, args UpdateAddressArgs) (*domain.MemberAddress, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var addr *domain.MemberAddress
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[MemberAddressRepository](tx, uow.RepositoryName(repoargs.MemberAddressRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, getErr := repo.Get(c, tenantID, args.UserID, args.AddressID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}

		if args.Name != nil {
			current.Name = *args.Name
		}
		if args.Phone != nil {
			current.Phone = *args.Phone
		}
		if args.Address != nil {
			current.Address = *args.Address
		}
		if args.Detail != nil {
			current.Detail = *args.Detail
		}
		if args.IsDefault != nil {
			current.IsDefault = *args.IsDefault
			if current.IsDefault {
				if clearErr := repo.ClearDefault(c, tenantID, args.UserID, current.ID); clearErr != nil {
					return clearErr //nolint:wrapcheck
				}
			}
		}

		if updErr := repo.Update(c, tenantID, current); updErr != nil {
			return updErr //nolint:wrapcheck
		}
		addr = current
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating address `%s`: %w", args.AddressID, txErr)
	}
	return addr, nil
}

// DeleteAddress удаляет адрес владельца. Идемпотентен.
func (m *MemberService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return domain.ErrTenantMissing
	}
	if err := m.addressRepo.Delete(ctx, tenantID, userID, addressID); err != nil {
		return fmt.Errorf("deleting address `%s`: %w", addressID, err)
	}
	return nil
}
