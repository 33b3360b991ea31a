package testutils

import (
	"path/filepath"
	"testing"

	"calling-tracker-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated SQLite database in a per-test temp directory.
// The connection is closed when the test ends.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitializeSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// MustCreate inserts each record and fails the test on the first error
func MustCreate(t *testing.T, db *gorm.DB, records ...interface{}) {
	t.Helper()
	for _, record := range records {
		require.NoError(t, db.Create(record).Error)
	}
}
