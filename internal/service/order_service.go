package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

// seqNoAttempts - число попыток чеканки суточного номера до того, как мы
// согласимся на возможную коллизию.
const seqNoAttempts = 5

type OrderService struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	storeRepo   StoreRepository
	catalogRepo CatalogRepository
	reviewRepo  OrderReviewRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	storeRepo, storeRepoErr := uow.GetRepositoryAs[StoreRepository](u, uow.RepositoryName(repoargs.StoreRepoName))
	if storeRepoErr != nil {
		return nil, storeRepoErr
	}
	catalogRepo, catalogRepoErr := uow.GetRepositoryAs[CatalogRepository](u, uow.RepositoryName(repoargs.CatalogRepoName))
	if catalogRepoErr != nil {
		return nil, catalogRepoErr
	}
	reviewRepo, reviewRepoErr := uow.GetRepositoryAs[OrderReviewRepository](u, uow.RepositoryName(repoargs.OrderReviewRepoName))
	if reviewRepoErr != nil {
		return nil, reviewRepoErr
	}
	return &OrderService{
		uow:         u,
		orderRepo:   orderRepo,
		storeRepo:   storeRepo,
		catalogRepo: catalogRepo,
		reviewRepo:  reviewRepo,
	}, nil
}

type CreateOrderItem struct {
	ItemID    string
	Quantity  int32
	Specs     []map[string]any
	Modifiers []map[string]any
}

type CreateOrderArgs struct {
	StoreID           string
	UserID            string
	Scene             domain.OrderScene
	TableCode         string
	Remark            string
	CouponID          string
	DirectAmountCents int64
	DeliveryInfo      map[string]any
	Items             []CreateOrderItem
}

// Create создает заказ. Тенант якорится магазином: найденный магазин определяет
// tenant_id всех последующих чтений и записей. Если тенант уже установлен в
// контексте и не совпадает с тенантом магазина - возвращается ErrStoreMismatch.
//
// Алгоритм работы:
//  1. Якорение тенанта по магазину.
//  2. Обогащение позиций авторитетными ценами каталога; нерезолвящиеся позиции
//     молча отбрасываются.
//  3. Чеканка ID и суточного номера (до seqNoAttempts попыток уникальности).
//  4. Атомарная запись заказа и снимков позиций.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	store, storeErr := o.storeRepo.FindAnchor(ctx, args.StoreID)
	if storeErr != nil {
		return nil, fmt.Errorf("creating order: %w", storeErr)
	}
	if ctxTenant, ok := tenant.FromContext(ctx); ok && ctxTenant != store.TenantID {
		return nil, domain.ErrStoreMismatch
	}
	ctx = tenant.WithTenant(ctx, store.TenantID)

	if store.Status != domain.StoreStatusOpen {
		return nil, domain.ErrValidation
	}
	// Сумма DIRECTPAY приходит от клиента и обязана быть положительной: ноль и
	// минус здесь - это бесплатный заказ либо кредитование кошелька при оплате.
	if args.Scene == domain.SceneDirectPay && args.DirectAmountCents <= 0 {
		return nil, domain.ErrValidation
	}

	items, coupon, enrichErr := o.enrichItems(ctx, store.TenantID, args)
	if enrichErr != nil {
		return nil, fmt.Errorf("creating order: %w", enrichErr)
	}
	if args.Scene != domain.SceneDirectPay && len(items) == 0 {
		return nil, domain.ErrValidation
	}

	order := domain.NewOrder(domain.NewOrderArgs{
		TenantID:          store.TenantID,
		StoreID:           store.ID,
		UserID:            args.UserID,
		Scene:             args.Scene,
		TableCode:         args.TableCode,
		Remark:            args.Remark,
		DirectAmountCents: args.DirectAmountCents,
		CouponApplied:     coupon,
		DeliveryInfo:      args.DeliveryInfo,
		Items:             items,
	})

	seqNo, seqNoErr := o.mintSeqNo(ctx, store.TenantID, store.ID, args.Scene)
	if seqNoErr != nil {
		return nil, fmt.Errorf("creating order: %w", seqNoErr)
	}
	order.SeqNo = seqNo

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return repo.Create(c, store.TenantID, order) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating order: %w", txErr)
	}
	return order, nil
}

// enrichItems строит снимки позиций из живого каталога. Клиентские цены
// игнорируются: авторитетны только цены каталога и правила купона.
func (o *OrderService) enrichItems(
	ctx context.Context,
	tenantID string,
	args CreateOrderArgs,
) ([]domain.OrderItemSnapshot, map[string]any, error) {
	switch args.Scene {
	case domain.SceneDirectPay:
		return nil, nil, nil
	case domain.SceneCoupon:
		coupon, couponErr := o.catalogRepo.GetCoupon(ctx, tenantID, args.CouponID)
		if couponErr != nil {
			return nil, nil, couponErr
		}
		snapshot := []domain.OrderItemSnapshot{{
			ItemID:     coupon.ID,
			Name:       coupon.Title,
			PriceCents: coupon.PriceCents,
			Quantity:   1,
		}}
		applied := map[string]any{"coupon_id": coupon.ID, "title": coupon.Title}
		return snapshot, applied, nil
	default:
	}

	var snapshots = make([]domain.OrderItemSnapshot, 0, len(args.Items))
	for _, it := range args.Items {
		if it.Quantity <= 0 {
			continue
		}
		item, itemErr := o.catalogRepo.GetItem(ctx, tenantID, it.ItemID)
		if itemErr != nil {
			// Позиция, исчезнувшая из каталога, не валит весь заказ.
			if errors.Is(itemErr, domain.ErrRecordNotFound) {
				continue
			}
			return nil, nil, itemErr
		}
		snapshots = append(snapshots, domain.OrderItemSnapshot{
			ItemID:     item.ID,
			Name:       item.Name,
			PriceCents: item.BasePriceCents,
			Quantity:   it.Quantity,
			Specs:      it.Specs,
			Modifiers:  it.Modifiers,
		})
	}
	return snapshots, nil, nil
}

// mintSeqNo чеканит суточный номер. Уникальность проверяется в рамках магазина
// и календарного дня; после seqNoAttempts неудач принимаем последний номер как
// есть - коллизия короткого номера неприятна, но не фатальна.
func (o *OrderService) mintSeqNo(
	ctx context.Context,
	tenantID, storeID string,
	scene domain.OrderScene,
) (string, error) {
	prefix := domain.SeqNoPrefix(scene)
	if prefix == "" {
		return "", nil
	}

	var seqNo string
	for range seqNoAttempts {
		seqNo = domain.RandomSeqNo(prefix)
		exists, existsErr := o.orderRepo.SeqNoExistsToday(ctx, tenantID, storeID, seqNo)
		if existsErr != nil {
			return "", existsErr
		}
		if !exists {
			return seqNo, nil
		}
	}
	return seqNo, nil
}

func (o *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	order, err := o.orderRepo.Get(ctx, tenantID, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// GetByUser возвращает заказы пользователя, отсортированные по дате создания
// по убыванию. Пустой статус не фильтрует.
func (o *OrderService) GetByUser(
	ctx context.Context,
	userID string,
	status domain.OrderStatusType,
) ([]domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	orders, err := o.orderRepo.List(ctx, tenantID, repoargs.OrderListFilter{UserID: userID, Status: status})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// ListForStore возвращает заказы магазина для стороны мерчанта, опционально
// отфильтрованные по статусу.
func (o *OrderService) ListForStore(
	ctx context.Context,
	storeID string,
	status domain.OrderStatusType,
) ([]domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	orders, err := o.orderRepo.List(ctx, tenantID, repoargs.OrderListFilter{StoreID: storeID, Status: status})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// Accept переводит оплаченный заказ в приготовление (PAID -> MAKING).
func (o *OrderService) Accept(ctx context.Context, orderID string) (*domain.Order, error) {
	return o.transition(ctx, orderID, domain.OrderStatusMaking)
}

// Complete завершает заказ (-> DONE) и начисляет баллы лояльности.
func (o *OrderService) Complete(ctx context.Context, orderID string) (*domain.Order, error) {
	return o.transition(ctx, orderID, domain.OrderStatusDone)
}

// Cancel отменяет неоплаченный заказ (CREATED -> CANCELLED).
func (o *OrderService) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return o.transition(ctx, orderID, domain.OrderStatusCancelled)
}

// Refund помечает заказ возвращенным (PAID/WAIT_USE -> REFUNDED). Сама выплата
// денег выполняется вне этого сервиса.
func (o *OrderService) Refund(ctx context.Context, orderID string) (*domain.Order, error) {
	return o.transition(ctx, orderID, domain.OrderStatusRefunded)
}

// transition выполняет переход статуса под блокировкой строки заказа. Перевод
// в DONE дополнительно проставляет completed_at и начисляет баллы.
func (o *OrderService) transition(
	ctx context.Context,
	orderID string,
	target domain.OrderStatusType,
) (*domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetForUpdate(c, tenantID, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if !domain.CanTransition(locked.Status, target) {
			return domain.NewInvalidTransitionError(locked.Status, target)
		}

		if applyErr := applyTransition(c, tx, tenantID, locked, target); applyErr != nil {
			return applyErr
		}
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("transitioning order `%s`: %w", orderID, txErr)
	}
	return order, nil
}

// applyTransition применяет уже проверенный переход: обновляет статус заказа
// и выполняет побочные эффекты целевого статуса. Вызывается и из оплаты, и из
// погашения, и из переходов мерчанта - всегда внутри транзакции.
func applyTransition(
	ctx context.Context,
	tx uow.TX,
	tenantID string,
	order *domain.Order,
	target domain.OrderStatusType,
) error {
	repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	upd := repoargs.OrderStatusUpdate{OrderID: order.ID, Target: target}
	if target == domain.OrderStatusDone {
		now := time.Now()
		upd.CompletedAt = &now
		order.CompletedAt = now
	}
	if updErr := repo.UpdateStatus(ctx, tenantID, upd); updErr != nil {
		return updErr //nolint:wrapcheck
	}
	order.Status = target

	if target == domain.OrderStatusDone {
		if pointsErr := awardPoints(ctx, tx, tenantID, order); pointsErr != nil {
			return pointsErr
		}
	}
	return nil
}

// awardPoints начисляет баллы лояльности за завершенный заказ:
// по одному баллу за каждый полный юань оплаченной суммы.
func awardPoints(ctx context.Context, tx uow.TX, tenantID string, order *domain.Order) error {
	points := domain.LoyaltyPoints(order.PricePayableCents)
	if points == 0 || order.UserID == "" {
		return nil
	}
	memberRepo, memberRepoErr := uow.GetAs[MemberRepository](tx, uow.RepositoryName(repoargs.MemberRepoName))
	if memberRepoErr != nil {
		return memberRepoErr //nolint:wrapcheck
	}
	if _, addErr := memberRepo.AddPoints(ctx, tenantID, order.UserID, points); addErr != nil {
		return addErr //nolint:wrapcheck
	}
	return nil
}

// GetReview возвращает отзыв к заказу, если он оставлен.
func (o *OrderService) GetReview(ctx context.Context, orderID string) (*domain.OrderReview, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	review, err := o.reviewRepo.GetByOrder(ctx, tenantID, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

type ReviewOrderArgs struct {
	OrderID string
	UserID  string
	Rating  int32
	Content string
}

// Review сохраняет отзыв владельца заказа. Отзыв разрешен только для DONE и
// REVIEWED; повторная отправка перезаписывает прежний отзыв. Первый отзыв
// переводит заказ в REVIEWED.
func (o *OrderService) Review(ctx context.Context, args ReviewOrderArgs) (*domain.OrderReview, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var review *domain.OrderReview
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		order, orderErr := orderRepo.GetForUpdate(c, tenantID, args.OrderID)
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}
		// Чужой заказ не раскрываем, отвечаем как на отсутствующий.
		if order.UserID != args.UserID {
			return domain.ErrRecordNotFound
		}
		if order.Status != domain.OrderStatusDone && order.Status != domain.OrderStatusReviewed {
			return domain.NewInvalidTransitionError(order.Status, domain.OrderStatusReviewed)
		}

		reviewRepo, reviewRepoErr := uow.GetAs[OrderReviewRepository](tx, uow.RepositoryName(repoargs.OrderReviewRepoName))
		if reviewRepoErr != nil {
			return reviewRepoErr //nolint:wrapcheck
		}

		var upsertErr error
		review, upsertErr = reviewRepo.Upsert(c, tenantID, repoargs.ReviewUpsert{
			OrderID: args.OrderID,
			UserID:  args.UserID,
			Rating:  args.Rating,
			Content: args.Content,
		})
		if upsertErr != nil {
			return upsertErr //nolint:wrapcheck
		}

		if order.Status == domain.OrderStatusDone {
			return orderRepo.UpdateStatus(c, tenantID, repoargs.OrderStatusUpdate{ //nolint:wrapcheck
				OrderID: args.OrderID,
				Target:  domain.OrderStatusReviewed,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("reviewing order `%s`: %w", args.OrderID, txErr)
	}
	return review, nil
}
