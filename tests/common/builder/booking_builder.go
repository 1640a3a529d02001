//go:build unit || e2e

package builder

import (
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	reqdto "shop-booking/internal/handler/dto/request"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/clock"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Wednesday
const DefaultBookingDate = "2026-10-14"

type BookingBuilder struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	ServiceID       uuid.UUID
	Date            string
	StartTime       string
	DurationMinutes int
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Note            string
	Status          appointment.Status
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		ShopID:          uuid.New(),
		ServiceID:       uuid.New(),
		Date:            DefaultBookingDate,
		StartTime:       "10:00",
		DurationMinutes: 30,
		CustomerName:    "Sato Hanako",
		CustomerPhone:   "090-1234-5678",
		CustomerEmail:   "hanako@example.com",
		Status:          appointment.StatusPending,
		CreatedAt:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCommand() commands.AdmitBookingRequest {
	serviceID := b.ServiceID
	return commands.AdmitBookingRequest{
		ShopID:          b.ShopID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		ServiceID:       &serviceID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		Note:            b.Note,
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.CreateBookingRequest {
	serviceID := b.ServiceID
	return reqdto.CreateBookingRequest{
		ShopID:          b.ShopID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		ServiceID:       &serviceID,
		Customer: reqdto.CustomerRequest{
			Name:  b.CustomerName,
			Phone: b.CustomerPhone,
			Email: b.CustomerEmail,
		},
		Note: b.Note,
	}
}

func (b *BookingBuilder) BuildDomain() (*appointment.Appointment, error) {
	date, err := availability.ParseDate(b.Date, time.UTC)
	if err != nil {
		return nil, err
	}
	start, err := availability.ParseWallClock(b.StartTime)
	if err != nil {
		return nil, err
	}
	services, err := appointment.NewServices(appointment.ServiceLine{ServiceID: b.ServiceID, DurationMinutes: b.DurationMinutes})
	if err != nil {
		return nil, err
	}
	customer, err := appointment.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(clock.NewMockClock(b.CreatedAt), b.ShopID, date, start, services, customer, appointment.NewNote(b.Note))
}

// BuildStored returns the appointment as a repository would load it.
func (b *BookingBuilder) BuildStored() *appointment.Appointment {
	date := mustDate(b.Date)
	customer, _ := appointment.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	return appointment.ReconstructAppointment(
		b.ID,
		b.ShopID,
		appointment.Services{{ServiceID: b.ServiceID, DurationMinutes: b.DurationMinutes}},
		customer,
		date,
		b.interval(),
		b.Status,
		appointment.NewNote(b.Note),
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildRow() sqlc.Appointments {
	iv := b.interval()
	date := mustDate(b.Date)
	startsAt := iv.Start.On(date)
	return sqlc.Appointments{
		ID:              b.ID,
		ShopID:          b.ShopID,
		ServiceIds:      []uuid.UUID{b.ServiceID},
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   pgtype.Text{String: b.CustomerEmail, Valid: b.CustomerEmail != ""},
		AppointmentDate: pgtype.Date{Time: date, Valid: true},
		StartMinute:     int32(iv.Start.Minutes()),
		DurationMinutes: int32(iv.Duration()),
		StartsAt:        pgtype.Timestamptz{Time: startsAt, Valid: true},
		EndsAt:          pgtype.Timestamptz{Time: startsAt.Add(time.Duration(iv.Duration()) * time.Minute), Valid: true},
		Status:          b.Status.String(),
		Note:            b.Note,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.AppointmentView {
	iv := b.interval()
	date := mustDate(b.Date)
	startsAt := iv.Start.On(date)
	var email, note *string
	if b.CustomerEmail != "" {
		e := b.CustomerEmail
		email = &e
	}
	if b.Note != "" {
		n := b.Note
		note = &n
	}
	return &queries.AppointmentView{
		ID:              b.ID,
		ShopID:          b.ShopID,
		ServiceIDs:      []uuid.UUID{b.ServiceID},
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   email,
		Date:            b.Date,
		StartTime:       iv.Start.String(),
		EndTime:         iv.End().String(),
		DurationMinutes: iv.Duration(),
		StartsAt:        startsAt,
		EndsAt:          startsAt.Add(time.Duration(iv.Duration()) * time.Minute),
		Status:          b.Status.String(),
		Note:            note,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildResult() *commands.AdmitBookingResult {
	iv := b.interval()
	return &commands.AdmitBookingResult{
		AppointmentID:   b.ID,
		Status:          b.Status.String(),
		Date:            b.Date,
		StartTime:       iv.Start.String(),
		EndTime:         iv.End().String(),
		DurationMinutes: iv.Duration(),
	}
}

// BuildBooked returns the interval the booking occupies on its day.
func (b *BookingBuilder) BuildBooked() availability.BookedInterval {
	return availability.BookedInterval{Interval: b.interval(), Cancelled: b.Status == appointment.StatusCancelled}
}

// Fluent builder methods
func (b *BookingBuilder) WithShopID(id uuid.UUID) *BookingBuilder {
	b.ShopID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start string, durationMinutes int) *BookingBuilder {
	b.StartTime = start
	b.DurationMinutes = durationMinutes
	return b
}

func (b *BookingBuilder) WithCustomer(name, phone string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithStatus(status appointment.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = appointment.StatusCancelled
	return b
}

func (b *BookingBuilder) interval() availability.Interval {
	return availability.NewInterval(availability.MustParseWallClock(b.StartTime), b.DurationMinutes)
}

func mustDate(s string) time.Time {
	d, err := availability.ParseDate(s, time.UTC)
	if err != nil {
		panic("builder: invalid date " + s)
	}
	return d
}
