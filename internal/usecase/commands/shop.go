package commands

import (
	"context"
	"strings"

	"shop-booking/internal/domain/availability"
	"shop-booking/internal/infra"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=shop.go -destination=../../../tests/mock/commands/shop_mock.go -package=commandsmock

var ErrInvalidShopSettings = errs.New("invalid shop settings")

type ShopHoursInput struct {
	WorkingDays []int
	OpenTime    string
	CloseTime   string
}

type ShopCommands interface {
	Create(ctx context.Context, name string, hours ShopHoursInput) (uuid.UUID, error)
	UpdateHours(ctx context.Context, shopID uuid.UUID, hours ShopHoursInput) error
}

type shopUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewShopCommands(uow shared.UnitOfWork) ShopCommands {
	return &shopUseCaseImpl{uow: uow}
}

func (uc *shopUseCaseImpl) Create(ctx context.Context, name string, in ShopHoursInput) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, errs.Mark(errs.New("shop name is required"), ErrInvalidShopSettings)
	}
	hours, err := availability.NewShopHours(in.WorkingDays, in.OpenTime, in.CloseTime)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidShopSettings)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Shops().Create(ctx, tx.DB(), name, hours)
		if cerr != nil {
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return id, nil
}

func (uc *shopUseCaseImpl) UpdateHours(ctx context.Context, shopID uuid.UUID, in ShopHoursInput) error {
	hours, err := availability.NewShopHours(in.WorkingDays, in.OpenTime, in.CloseTime)
	if err != nil {
		return errs.Mark(err, ErrInvalidShopSettings)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Shops().UpdateHours(ctx, tx.DB(), shopID, hours)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrShopNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}
