package repository

import (
	"context"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/repository/shop_mock.go -package=repositorymock

type ShopWriteQueries interface {
	CreateShop(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateShopParams) (sqlc.Shops, error)
	UpdateShopHours(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShopHoursParams) (sqlc.Shops, error)
}

type ShopRepository struct {
	queries ShopWriteQueries
}

func NewShopRepository(queries ShopWriteQueries) *ShopRepository {
	return &ShopRepository{queries: queries}
}

func (r *ShopRepository) Create(ctx context.Context, tx sqlc.DBTX, name string, hours availability.ShopHours) (uuid.UUID, error) {
	row, err := r.queries.CreateShop(ctx, tx, sqlc.CreateShopParams{
		ID:          uuid.New(),
		Name:        name,
		WorkingDays: pgconv.Int16sFromInts(hours.WorkingDays()),
		OpenMinute:  int32(hours.Open().Minutes()),  // #nosec G115 -- bounded by 24h
		CloseMinute: int32(hours.Close().Minutes()), // #nosec G115 -- bounded by 24h
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shop", err)
	}
	return row.ID, nil
}

func (r *ShopRepository) UpdateHours(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, hours availability.ShopHours) error {
	_, err := r.queries.UpdateShopHours(ctx, tx, sqlc.UpdateShopHoursParams{
		ID:          shopID,
		WorkingDays: pgconv.Int16sFromInts(hours.WorkingDays()),
		OpenMinute:  int32(hours.Open().Minutes()),  // #nosec G115 -- bounded by 24h
		CloseMinute: int32(hours.Close().Minutes()), // #nosec G115 -- bounded by 24h
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update shop hours", err)
	}
	return nil
}
