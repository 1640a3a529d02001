//go:build unit || e2e

package builder

import (
	"time"

	"shop-booking/internal/domain/availability"
	reqdto "shop-booking/internal/handler/dto/request"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"
	"shop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ShopBuilder struct {
	ID          uuid.UUID
	Name        string
	WorkingDays []int
	OpenTime    string
	CloseTime   string
	UpdatedAt   time.Time
}

// NewShopBuilder describes a shop open Monday to Saturday, 09:00-18:00.
func NewShopBuilder() *ShopBuilder {
	return &ShopBuilder{
		ID:          uuid.New(),
		Name:        "Barber Kanda",
		WorkingDays: []int{1, 2, 3, 4, 5, 6},
		OpenTime:    "09:00",
		CloseTime:   "18:00",
		UpdatedAt:   time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *ShopBuilder) With(mutate func(*ShopBuilder)) *ShopBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ShopBuilder) BuildHours() (availability.ShopHours, error) {
	return availability.NewShopHours(s.WorkingDays, s.OpenTime, s.CloseTime)
}

func (s *ShopBuilder) BuildSnapshot() *shared.ShopSnapshot {
	hours, err := s.BuildHours()
	if err != nil {
		panic("builder: invalid shop hours: " + err.Error())
	}
	return &shared.ShopSnapshot{ID: s.ID, Name: s.Name, Hours: hours}
}

func (s *ShopBuilder) BuildView() *queries.ShopView {
	return &queries.ShopView{
		ID:          s.ID,
		Name:        s.Name,
		WorkingDays: append([]int(nil), s.WorkingDays...),
		OpenMinute:  availability.MustParseWallClock(s.OpenTime).Minutes(),
		CloseMinute: availability.MustParseWallClock(s.CloseTime).Minutes(),
		UpdatedAt:   s.UpdatedAt,
	}
}

func (s *ShopBuilder) BuildRow() sqlc.Shops {
	days := make([]int16, len(s.WorkingDays))
	for i, d := range s.WorkingDays {
		days[i] = int16(d)
	}
	return sqlc.Shops{
		ID:          s.ID,
		Name:        s.Name,
		WorkingDays: days,
		OpenMinute:  int32(availability.MustParseWallClock(s.OpenTime).Minutes()),
		CloseMinute: int32(availability.MustParseWallClock(s.CloseTime).Minutes()),
		CreatedAt:   pgtype.Timestamptz{Time: s.UpdatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: s.UpdatedAt, Valid: true},
	}
}

func (s *ShopBuilder) BuildHoursInput() commands.ShopHoursInput {
	return commands.ShopHoursInput{
		WorkingDays: s.WorkingDays,
		OpenTime:    s.OpenTime,
		CloseTime:   s.CloseTime,
	}
}

func (s *ShopBuilder) BuildCreateRequestDTO() reqdto.CreateShopRequest {
	return reqdto.CreateShopRequest{
		Name:        s.Name,
		WorkingDays: s.WorkingDays,
		OpenTime:    s.OpenTime,
		CloseTime:   s.CloseTime,
	}
}

func (s *ShopBuilder) BuildHoursRequestDTO() reqdto.ShopHoursRequest {
	return reqdto.ShopHoursRequest{
		WorkingDays: s.WorkingDays,
		OpenTime:    s.OpenTime,
		CloseTime:   s.CloseTime,
	}
}

// Fluent builder methods
func (s *ShopBuilder) WithID(id uuid.UUID) *ShopBuilder {
	s.ID = id
	return s
}

func (s *ShopBuilder) WithHours(open, close string) *ShopBuilder {
	s.OpenTime = open
	s.CloseTime = close
	return s
}

func (s *ShopBuilder) WithWorkingDays(days ...int) *ShopBuilder {
	s.WorkingDays = days
	return s
}

func (s *ShopBuilder) AsClosedEveryDay() *ShopBuilder {
	s.WorkingDays = []int{}
	return s
}
