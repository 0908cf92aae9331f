package health

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/21javi21/corderos-app/logging"
)

const (
	checkInterval = 30 * time.Second
	pingTimeout   = 2 * time.Second
)

// PerformCheck pings the store once and records the outcome.
func PerformCheck(db *gorm.DB) {
	err := ping(db)
	if err != nil {
		logging.Log.Warnf("store health check failed: %v", err)
	}
	globalStatus.update(err == nil, err)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// StartStoreHealthCheck pings the store periodically until the process
// exits. Run it on its own goroutine.
func StartStoreHealthCheck(db *gorm.DB) {
	PerformCheck(db)
	timer := time.NewTimer(checkInterval)
	defer timer.Stop()
	for {
		<-timer.C
		PerformCheck(db)
		timer.Reset(checkInterval)
	}
}
