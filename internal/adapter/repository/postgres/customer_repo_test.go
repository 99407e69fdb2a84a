package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hishabkitab/backend/internal/domain"
)

var customerColumns = []string{"id", "owner_id", "name", "mobile", "note", "created_at"}

func TestCustomerRepositoryGetByID(t *testing.T) {
	pool := newMockPool(t)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	pool.ExpectQuery("SELECT id, owner_id, name, mobile, note, created_at FROM customers").
		WithArgs("c1", "owner-1").
		WillReturnRows(pgxmock.NewRows(customerColumns).
			AddRow("c1", "owner-1", "Asha", "01712345678", "", pgtype.Timestamptz{Time: created, Valid: true}))

	customer, err := NewCustomerRepository(pool).GetByID(context.Background(), "owner-1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer.Name)
	assert.Equal(t, created, customer.CreatedAt)
	assertExpectations(t, pool)
}

func TestCustomerRepositoryGetByIDNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery("FROM customers").
		WithArgs("missing", "owner-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewCustomerRepository(pool).GetByID(context.Background(), "owner-1", "missing")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerRepositoryList(t *testing.T) {
	pool := newMockPool(t)
	ts := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	pool.ExpectQuery("FROM customers").
		WithArgs("owner-1", int32(20), int32(40)).
		WillReturnRows(pgxmock.NewRows(customerColumns).
			AddRow("c1", "owner-1", "Asha", "", "", ts).
			AddRow("c2", "owner-1", "Bilal", "", "regular", ts))

	customers, err := NewCustomerRepository(pool).List(context.Background(), "owner-1", 20, 40)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "regular", customers[1].Note)
}

func TestCustomerRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: domain.ErrCustomerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newMockPool(t)
			pool.ExpectExec("DELETE FROM customers").
				WithArgs("c1", "owner-1").
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := NewCustomerRepository(pool).Delete(context.Background(), "owner-1", "c1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
