package services

import (
	"path/filepath"
	"testing"

	"studio-backend/config"
	"studio-backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func ptr[T any](v T) *T { return &v }

func statusOf(err error) (int, bool) {
	status, appErr := utils.StatusFor(err)
	return status, appErr != nil
}
