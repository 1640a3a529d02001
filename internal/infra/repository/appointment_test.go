//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/infra"
	"shop-booking/internal/infra/repository"
	sqlc "shop-booking/internal/infra/sqlc/generated"
	"shop-booking/tests/common/builder"
	repositorymock "shop-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Appointment Tests
// =============================================================================

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment created with its absolute range",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, a *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.CreateAppointmentParams) (uuid.UUID, error) {
						assert.Equal(t, a.ID(), p.ID)
						assert.Equal(t, int32(600), p.StartMinute)
						assert.Equal(t, int32(30), p.DurationMinutes)
						assert.Equal(t, time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC), p.StartsAt.Time)
						assert.Equal(t, time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC), p.EndsAt.Time)
						assert.Equal(t, "pending", p.Status)
						assert.True(t, p.CustomerEmail.Valid)
						return p.ID, nil
					})
			},
		},
		{
			name: "error: overlapping active appointment",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, excl)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown shop",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

			domainAppt, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainAppt, mockDB)

			id, actualError := repo.Create(ctx, mockDB, domainAppt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainAppt.ID(), id)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestAppointmentRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is rebuilt into the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

		b := builder.NewBookingBuilder().WithStatus(appointment.StatusConfirmed)
		mockQueries.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), b.ID).Return(b.BuildRow(), nil)

		got, err := repo.FindForUpdate(ctx, &mockDBTX{}, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, b.ShopID, got.ShopID())
		assert.Equal(t, appointment.StatusConfirmed, got.Status())
		assert.Equal(t, "10:00-10:30", got.Interval().String())
		assert.Equal(t, time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC), got.StartAt())
		assert.Equal(t, b.CustomerEmail, got.Customer().Email())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, time.UTC)
		id := uuid.New()

		mockQueries.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), id).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, &mockDBTX{}, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

		b := builder.NewBookingBuilder()
		row := b.BuildRow()
		row.Status = "archived"
		mockQueries.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), b.ID).Return(row, nil)

		_, err := repo.FindForUpdate(ctx, &mockDBTX{}, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
	})
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: no row updated", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

			a := builder.NewBookingBuilder().AsCancelled().BuildStored()
			mockQueries.EXPECT().UpdateAppointmentStatus(ctx, gomock.Any(), sqlc.UpdateAppointmentStatusParams{
				ID:        a.ID(),
				Status:    "cancelled",
				UpdatedAt: pgtype.Timestamptz{Time: a.UpdatedAt(), Valid: true},
			}).Return(tc.affected, tc.err)

			err := repo.UpdateStatus(ctx, &mockDBTX{}, a)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

// =============================================================================
// LockShopDay Tests
// =============================================================================

func TestAppointmentRepository_LockShopDay(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.MustParse("7f1c2a3b-0000-4000-8000-000000000001")
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	t.Run("success: key is scoped to shop and day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

		mockQueries.EXPECT().LockShopDay(ctx, gomock.Any(), "booking:7f1c2a3b-0000-4000-8000-000000000001:2026-10-14").Return(nil)

		require.NoError(t, repo.LockShopDay(ctx, &mockDBTX{}, shopID, day))
	})

	t.Run("error: lock failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, time.UTC)

		mockQueries.EXPECT().LockShopDay(ctx, gomock.Any(), gomock.Any()).Return(errors.New("canceling statement due to lock timeout"))

		err := repo.LockShopDay(ctx, &mockDBTX{}, shopID, day)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("keys differ across days and shops", func(t *testing.T) {
		other := uuid.New()
		assert.NotEqual(t, repository.DayLockKey(shopID, day), repository.DayLockKey(shopID, day.AddDate(0, 0, 1)))
		assert.NotEqual(t, repository.DayLockKey(shopID, day), repository.DayLockKey(other, day))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
