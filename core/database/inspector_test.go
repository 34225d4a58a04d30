package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])

	// PRAGMA table_info returns no rows for unknown tables
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestVerifySchema(t *testing.T) {
	t.Run("Empty database", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		issues, err := VerifySchema(db)
		require.NoError(t, err)
		assert.Len(t, issues, 10)
		for _, issue := range issues {
			assert.True(t, issue.MissingTable, issue.Table)
		}
	})

	t.Run("Migrated database", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, Migrate(db))

		issues, err := VerifySchema(db)
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("Missing column", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, Migrate(db))
		require.NoError(t, db.Exec("DROP TABLE sync_settings").Error)
		require.NoError(t, db.Exec("CREATE TABLE sync_settings (id INTEGER PRIMARY KEY, user_id TEXT)").Error)

		issues, err := VerifySchema(db)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "sync_settings", issues[0].Table)
		assert.False(t, issues[0].MissingTable)
		assert.Contains(t, issues[0].MissingColumns, "mode")
		assert.Contains(t, issues[0].MissingColumns, "ignore_list")
	})
}
