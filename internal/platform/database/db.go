package database

import (
	"fmt"
	"log"
	"os"

	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared gorm handle, set once by InitDB.
var DB *gorm.DB

// InitDB opens the relational store selected in the configuration:
// SQLite for local development, Postgres in the deployed form.
func InitDB() {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel: logger.Silent,
			Colorful: true,
		},
	)

	dbCfg := config.Cfg.Database

	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case "postgres":
		dsn := dbCfg.Postgres.DSN
		// The deployment injects the connection string as DATABASE_URL.
		if v := os.Getenv("DATABASE_URL"); v != "" {
			dsn = v
		}
		dialector = postgres.Open(dsn)
	default:
		// Rating rows cascade with their villain; SQLite only honors the
		// foreign key if the pragma is switched on.
		dialector = sqlite.Open(fmt.Sprintf("%s?_foreign_keys=on", dbCfg.Sqlite.Path))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		// Driver-specific unique violations surface as
		// gorm.ErrDuplicatedKey, which the registry maps to its own error.
		TranslateError: true,
	})
	if err != nil {
		logging.Log.Errorf("failed to connect to database: %v", err)
		panic(err)
	}

	logging.Log.Infof("database ready (driver=%s)", dbCfg.Driver)
}
