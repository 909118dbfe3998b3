package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskplanner/internal/config"
)

func TestConnectDB_UnsupportedDriver(t *testing.T) {
	_, err := ConnectDB(&config.Config{DbDriver: "oracle"})
	require.Error(t, err)
}

func TestConnectDB_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")

	db, err := ConnectDB(&config.Config{DbDriver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
	assert.Equal(t, config.DriverSQLite, db.DriverName())
}

func TestConnectDB_DefaultSQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	conn, err := ConnectDB(&config.Config{DbDriver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(ctx, conn))

	var tables []string
	require.NoError(t, conn.SelectContext(ctx, &tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"))
	assert.Equal(t, []string{"categories", "productivity_logs", "schema_migrations", "subtasks", "tasks", "time_blocks"}, tables)
}

func TestMigrate_EmbedsEveryDriver(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverMySQL} {
		entries, err := migrations.ReadDir("migrations/" + driver)
		require.NoError(t, err, driver)
		assert.NotEmpty(t, entries, driver)
	}
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file:test?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("data/tasks.db"))
}
