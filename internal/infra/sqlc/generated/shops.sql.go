package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getShopHours = `-- name: GetShopHours :one
SELECT id, name, working_days, open_minute, close_minute, created_at, updated_at
FROM shops
WHERE id = $1
`

func (q *Queries) GetShopHours(ctx context.Context, db DBTX, id uuid.UUID) (Shops, error) {
	row := db.QueryRow(ctx, getShopHours, id)
	var i Shops
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WorkingDays,
		&i.OpenMinute,
		&i.CloseMinute,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createShop = `-- name: CreateShop :one
INSERT INTO shops (id, name, working_days, open_minute, close_minute)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, working_days, open_minute, close_minute, created_at, updated_at
`

type CreateShopParams struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	WorkingDays []int16   `json:"working_days"`
	OpenMinute  int32     `json:"open_minute"`
	CloseMinute int32     `json:"close_minute"`
}

func (q *Queries) CreateShop(ctx context.Context, db DBTX, arg CreateShopParams) (Shops, error) {
	row := db.QueryRow(ctx, createShop,
		arg.ID,
		arg.Name,
		arg.WorkingDays,
		arg.OpenMinute,
		arg.CloseMinute,
	)
	var i Shops
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WorkingDays,
		&i.OpenMinute,
		&i.CloseMinute,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateShopHours = `-- name: UpdateShopHours :one
UPDATE shops
SET working_days = $2,
    open_minute  = $3,
    close_minute = $4,
    updated_at   = now()
WHERE id = $1
RETURNING id, name, working_days, open_minute, close_minute, created_at, updated_at
`

type UpdateShopHoursParams struct {
	ID          uuid.UUID `json:"id"`
	WorkingDays []int16   `json:"working_days"`
	OpenMinute  int32     `json:"open_minute"`
	CloseMinute int32     `json:"close_minute"`
}

func (q *Queries) UpdateShopHours(ctx context.Context, db DBTX, arg UpdateShopHoursParams) (Shops, error) {
	row := db.QueryRow(ctx, updateShopHours,
		arg.ID,
		arg.WorkingDays,
		arg.OpenMinute,
		arg.CloseMinute,
	)
	var i Shops
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WorkingDays,
		&i.OpenMinute,
		&i.CloseMinute,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockShopDay = `-- name: LockShopDay :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

// LockShopDay blocks until the transaction holds the advisory lock for key.
// The lock is released on commit or rollback.
func (q *Queries) LockShopDay(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, lockShopDay, key)
	return err
}
