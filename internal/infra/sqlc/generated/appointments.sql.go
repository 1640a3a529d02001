package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentColumns = `id, shop_id, service_ids, customer_name, customer_phone, customer_email,
       appointment_date, start_minute, duration_minutes, starts_at, ends_at,
       status, note, created_at, updated_at`

const createAppointment = `-- name: CreateAppointment :one
INSERT INTO appointments (
    id, shop_id, service_ids, customer_name, customer_phone, customer_email,
    appointment_date, start_minute, duration_minutes, starts_at, ends_at, status, note
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING id
`

type CreateAppointmentParams struct {
	ID              uuid.UUID          `json:"id"`
	ShopID          uuid.UUID          `json:"shop_id"`
	ServiceIds      []uuid.UUID        `json:"service_ids"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   pgtype.Text        `json:"customer_email"`
	AppointmentDate pgtype.Date        `json:"appointment_date"`
	StartMinute     int32              `json:"start_minute"`
	DurationMinutes int32              `json:"duration_minutes"`
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	EndsAt          pgtype.Timestamptz `json:"ends_at"`
	Status          string             `json:"status"`
	Note            string             `json:"note"`
}

func (q *Queries) CreateAppointment(ctx context.Context, db DBTX, arg CreateAppointmentParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createAppointment,
		arg.ID,
		arg.ShopID,
		arg.ServiceIds,
		arg.CustomerName,
		arg.CustomerPhone,
		arg.CustomerEmail,
		arg.AppointmentDate,
		arg.StartMinute,
		arg.DurationMinutes,
		arg.StartsAt,
		arg.EndsAt,
		arg.Status,
		arg.Note,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateAppointmentStatus = `-- name: UpdateAppointmentStatus :execrows
UPDATE appointments
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateAppointmentStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateAppointmentStatus(ctx context.Context, db DBTX, arg UpdateAppointmentStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateAppointmentStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getAppointmentByID = `-- name: GetAppointmentByID :one
SELECT ` + appointmentColumns + `
FROM appointments
WHERE id = $1
`

func (q *Queries) GetAppointmentByID(ctx context.Context, db DBTX, id uuid.UUID) (Appointments, error) {
	return scanAppointment(db.QueryRow(ctx, getAppointmentByID, id))
}

const getAppointmentForUpdate = `-- name: GetAppointmentForUpdate :one
SELECT ` + appointmentColumns + `
FROM appointments
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetAppointmentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Appointments, error) {
	return scanAppointment(db.QueryRow(ctx, getAppointmentForUpdate, id))
}

const listBookedIntervals = `-- name: ListBookedIntervals :many
SELECT id, starts_at, duration_minutes, status
FROM appointments
WHERE shop_id = $1
  AND status <> 'cancelled'
  AND starts_at < $3
  AND ends_at > $2
ORDER BY starts_at
`

type ListBookedIntervalsParams struct {
	ShopID   uuid.UUID          `json:"shop_id"`
	DayStart pgtype.Timestamptz `json:"day_start"`
	DayEnd   pgtype.Timestamptz `json:"day_end"`
}

type ListBookedIntervalsRow struct {
	ID              uuid.UUID          `json:"id"`
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	DurationMinutes int32              `json:"duration_minutes"`
	Status          string             `json:"status"`
}

func (q *Queries) ListBookedIntervals(ctx context.Context, db DBTX, arg ListBookedIntervalsParams) ([]ListBookedIntervalsRow, error) {
	rows, err := db.Query(ctx, listBookedIntervals, arg.ShopID, arg.DayStart, arg.DayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookedIntervalsRow
	for rows.Next() {
		var i ListBookedIntervalsRow
		if err := rows.Scan(
			&i.ID,
			&i.StartsAt,
			&i.DurationMinutes,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAppointmentsByShopDate = `-- name: ListAppointmentsByShopDate :many
SELECT ` + appointmentColumns + `
FROM appointments
WHERE shop_id = $1
  AND appointment_date = $2
ORDER BY starts_at, id
`

type ListAppointmentsByShopDateParams struct {
	ShopID          uuid.UUID   `json:"shop_id"`
	AppointmentDate pgtype.Date `json:"appointment_date"`
}

func (q *Queries) ListAppointmentsByShopDate(ctx context.Context, db DBTX, arg ListAppointmentsByShopDateParams) ([]Appointments, error) {
	rows, err := db.Query(ctx, listAppointmentsByShopDate, arg.ShopID, arg.AppointmentDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Appointments
	for rows.Next() {
		i, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (Appointments, error) {
	var i Appointments
	err := row.Scan(
		&i.ID,
		&i.ShopID,
		&i.ServiceIds,
		&i.CustomerName,
		&i.CustomerPhone,
		&i.CustomerEmail,
		&i.AppointmentDate,
		&i.StartMinute,
		&i.DurationMinutes,
		&i.StartsAt,
		&i.EndsAt,
		&i.Status,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
