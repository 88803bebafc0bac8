//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"relove/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kinds      []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "explicit kind wins over classification",
			err:        errors.New("no rows in result set"),
			kinds:      []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation classifies as duplicate key",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation is classified",
			err:        &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "other postgres errors fall back to DB failure",
			err:        &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "plain errors fall back to DB failure",
			err:        errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("query failed", tc.err, tc.kinds...)

			require.Error(t, wrapped)
			assert.True(t, infra.IsKind(wrapped, tc.expectKind),
				"expected kind [%v] but got [%v]", tc.expectKind, wrapped)
			assert.ErrorContains(t, wrapped, "query failed")
		})
	}
}

func TestWrapRepoErrWithoutCause(t *testing.T) {
	// Repositories fabricate kind-only errors for conditions no driver
	// error represents, such as a lost CAS race.
	wrapped := infra.WrapRepoErr("auction already closed", nil, infra.KindConflict)

	require.Error(t, wrapped)
	assert.True(t, infra.IsKind(wrapped, infra.KindConflict))
	assert.Equal(t, "CONFLICT: auction already closed", wrapped.Error())
}

func TestIsKind(t *testing.T) {
	wrapped := infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)

	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(errors.New("bare"), infra.KindNotFound))
}
