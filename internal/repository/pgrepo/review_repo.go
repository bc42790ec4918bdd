package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type OrderReviewRepository struct {
	conn uow.DBTX
}

func NewOrderReviewRepository(conn uow.DBTX) *OrderReviewRepository {
	return &OrderReviewRepository{conn: conn}
}

// Upsert сохраняет отзыв к заказу. Повторная отправка тем же пользователем
// перезаписывает прежний отзыв, а не плодит дубликаты.
func (r *OrderReviewRepository) Upsert(
	ctx context.Context,
	tenantID string,
	args repoargs.ReviewUpsert,
) (*domain.OrderReview, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO order_reviews (tenant_id, order_id, user_id, rating, content)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, content = EXCLUDED.content, updated_at = now()
		RETURNING id, tenant_id, order_id, user_id, rating, content, created_at, updated_at`,
		tenantID, args.OrderID, args.UserID, args.Rating, args.Content,
	)
	var review domain.OrderReview
	err := row.Scan(&review.ID, &review.TenantID, &review.OrderID, &review.UserID,
		&review.Rating, &review.Content, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "upserting review of order `%s`", args.OrderID)
	}
	return &review, nil
}

func (r *OrderReviewRepository) GetByOrder(ctx context.Context, tenantID, orderID string) (*domain.OrderReview, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT id, tenant_id, order_id, user_id, rating, content, created_at, updated_at
		FROM order_reviews WHERE tenant_id = $1 AND order_id = $2`,
		tenantID, orderID,
	)
	var review domain.OrderReview
	err := row.Scan(&review.ID, &review.TenantID, &review.OrderID, &review.UserID,
		&review.Rating, &review.Content, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting review of order `%s`", orderID)
	}
	return &review, nil
}
