package readstore

import (
	"context"

	"shop-booking/internal/infra"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/pgconv"
	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/readstore/shop_mock.go -package=readstoremock

type ShopReadQueries interface {
	GetShopHours(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Shops, error)
}

type ShopReadStore struct {
	queries ShopReadQueries
	db      sqlc.DBTX
}

func NewShopReadStore(queries ShopReadQueries, db sqlc.DBTX) *ShopReadStore {
	return &ShopReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ShopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShopView, error) {
	row, err := r.queries.GetShopHours(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shop hours", err)
	}
	return &queries.ShopView{
		ID:          row.ID,
		Name:        row.Name,
		WorkingDays: pgconv.IntsFromInt16s(row.WorkingDays),
		OpenMinute:  int(row.OpenMinute),
		CloseMinute: int(row.CloseMinute),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
