package pgsql

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSaveError_ConcurrentActiveInsertIsConflict(t *testing.T) {
	// The loser of two racing inserts for one (product, country) sees this.
	pgErr := &pgconn.PgError{
		Code:           sqlStateUniqueViolation,
		ConstraintName: "idx_product_currency_prices_active_country",
	}

	err := mapSaveError(pgErr, "US")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "US")
}

func TestMapSaveError_MissingProductIsNotFound(t *testing.T) {
	err := mapSaveError(&pgconn.PgError{Code: sqlStateForeignKeyViolation}, "US")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMapSaveError_OtherFailuresAreInternal(t *testing.T) {
	cause := errors.New("connection reset")

	err := mapSaveError(cause, "US")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, apperrors.ErrDuplicate))
}
