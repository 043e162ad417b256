package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:db_%s?mode=memory&cache=shared", t.Name()), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, AutoMigrateReadModels(db))
	assert.NoError(t, Ping(context.Background(), db))

	for _, table := range []string{"users", "vehicles", "bookings", "transactions", "support_tickets"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u@h/db"))
	assert.True(t, IsPostgres("postgresql://u@h/db"))
	assert.False(t, IsPostgres("file:dev.db"))
}

func TestIsQueryTimeout(t *testing.T) {
	assert.False(t, IsQueryTimeout(nil))
	assert.False(t, IsQueryTimeout(errors.New("boom")))
	assert.True(t, IsQueryTimeout(fmt.Errorf("list bookings: %w", context.DeadlineExceeded)))
	assert.True(t, IsQueryTimeout(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "57014"})))
	assert.False(t, IsQueryTimeout(&pgconn.PgError{Code: "23505"}))
}
