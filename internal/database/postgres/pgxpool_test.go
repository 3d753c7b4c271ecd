package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"resume-scorer/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost: " db ", DBPort: "5432", DBUser: "app", DBPassword: "pw", DBName: "scores", DBSSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=scores sslmode=disable", got)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), errNilDB)
	assert.NoError(t, p.Close())
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, errNilDB)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), errNilDB)
	assert.Nil(t, p.SQLDB())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("find: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errNilDB))
}
