package database

import (
	"context"
	"testing"

	"github.com/a2sh3r/fundledger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_InvalidDSN(t *testing.T) {
	cfg := &config.Config{
		DatabaseURI: "invalid://dsn",
	}

	_, err := InitDB(context.Background(), cfg)
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
