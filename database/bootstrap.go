package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cropwise/entities"
)

// OpenSQLite opens the database at path and migrates the field tables.
// ":memory:" is pinned to a single connection so every query sees the same database.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, eris.Wrapf(err, "database: open sqlite %s", path)
	}

	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, eris.Wrap(err, "database: sql handle")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.SoilSample{},
		&entities.WeatherSummary{},
	); err != nil {
		return nil, eris.Wrap(err, "database: automigrate")
	}

	zap.L().Info("database: ready", zap.String("path", path))
	return db, nil
}
