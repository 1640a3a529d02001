package converter

import (
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/domain/availability"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	iv := a.Interval()
	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		ShopID:          a.ShopID(),
		ServiceIds:      a.Services().IDs(),
		CustomerName:    a.Customer().Name(),
		CustomerPhone:   a.Customer().Phone(),
		CustomerEmail:   pgconv.StringToPgtype(a.Customer().Email()),
		AppointmentDate: pgconv.DateToPgtype(a.Date()),
		StartMinute:     int32(iv.Start.Minutes()), // #nosec G115 -- bounded by 24h
		DurationMinutes: int32(iv.Duration()),      // #nosec G115 -- bounded by opening hours
		StartsAt:        pgconv.TimeToPgtype(a.StartAt()),
		EndsAt:          pgconv.TimeToPgtype(a.EndAt()),
		Status:          a.Status().String(),
		Note:            a.Note().String(),
	}
}

// AppointmentFromRow rebuilds the aggregate. Per-service durations are not
// stored, so the whole block is attributed to the first service.
func AppointmentFromRow(row sqlc.Appointments, loc *time.Location) (*appointment.Appointment, error) {
	customer, err := appointment.NewCustomer(row.CustomerName, row.CustomerPhone, row.CustomerEmail.String)
	if err != nil {
		return nil, err
	}

	status := appointment.Status(row.Status)
	if !status.IsValid() {
		return nil, appointment.ErrInvalidStatus
	}

	services := make(appointment.Services, 0, len(row.ServiceIds))
	for i, id := range row.ServiceIds {
		line := appointment.ServiceLine{ServiceID: id}
		if i == 0 {
			line.DurationMinutes = int(row.DurationMinutes)
		}
		services = append(services, line)
	}
	if len(services) == 0 {
		services = append(services, appointment.ServiceLine{ServiceID: uuid.Nil, DurationMinutes: int(row.DurationMinutes)})
	}

	return appointment.ReconstructAppointment(
		row.ID,
		row.ShopID,
		services,
		customer,
		pgconv.DateFromPgtype(row.AppointmentDate, loc),
		availability.NewInterval(availability.WallClock(row.StartMinute), int(row.DurationMinutes)),
		status,
		appointment.NewNote(row.Note),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
