//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"shop-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{name: "plain error", err: errors.New("connection reset"), wantKind: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "wrapped exclusion violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}), wantKind: infra.KindConflict},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(wrapped, tc.wantKind), "got %v", wrapped)
			var pgErr *pgconn.PgError
			if errors.As(tc.err, &pgErr) {
				assert.True(t, errors.As(wrapped, &pgErr), "pg error must stay reachable")
			}
		})
	}
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
