package database

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_UnknownDirection(t *testing.T) {
	err := Migrate("postgres://localhost/none", "file://migrations", Direction("sideways"), 0, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestNewPgxPool_RejectsBadURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "", slog.Default())
	assert.EqualError(t, err, "database URL cannot be empty")

	_, err = NewPgxPool(context.Background(), "postgres://%zz", slog.Default())
	assert.ErrorContains(t, err, "failed to parse database config")
}
