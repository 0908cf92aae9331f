package health

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/21javi21/corderos-app/logging"
)

func TestPerformCheck(t *testing.T) {
	logging.Bootstrap()

	dsn := filepath.Join(t.TempDir(), "health.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	PerformCheck(db)
	snap := Current()
	assert.True(t, snap.Healthy)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.CheckedAt.IsZero())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	PerformCheck(db)
	snap = Current()
	assert.False(t, snap.Healthy)
	assert.NotEmpty(t, snap.Error)
}
