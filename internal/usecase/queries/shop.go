package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/queries/shop_mock.go -package=queriesmock

type ShopQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
}

type shopQueriesImpl struct {
	shops ShopReadStore
}

func NewShopQueries(shops ShopReadStore) ShopQueries {
	return &shopQueriesImpl{shops: shops}
}

func (q *shopQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ShopView, error) {
	v, err := q.shops.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, ErrShopNotFound)
	}
	return v, nil
}
