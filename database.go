package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// SessionEntry is one persisted key of the session cache
type SessionEntry struct {
	Name      string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// sqliteCache is the persistent dashboard.SessionCache. It survives restarts
// of the CLI the way browser storage survives page reloads.
type sqliteCache struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// openSessionCache opens (or creates) the SQLite cache at path
func openSessionCache(path string) (*sqliteCache, error) {
	// Ensure the directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("directory", dir).Msg("[Cache] Could not create cache directory")
		}
	}

	// WAL plus a busy timeout so a watch process and one-shot commands can
	// share the file. modernc applies each _pragma on every new connection.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	// Pure Go SQLite driver, no CGO
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}

	if err := db.AutoMigrate(&SessionEntry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate cache: %w", err)
	}

	log.Debug().Str("path", path).Msg("[Cache] Session cache initialized")
	return &sqliteCache{db: db, sqlDB: sqlDB}, nil
}

// Get returns the stored value, empty when the key was never written
func (c *sqliteCache) Get(key string) (string, error) {
	var entry SessionEntry
	err := c.db.Where("name = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// Set upserts key
func (c *sqliteCache) Set(key, value string) error {
	entry := SessionEntry{Name: key, Value: value, UpdatedAt: time.Now().UTC()}
	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (c *sqliteCache) Close() error {
	return c.sqlDB.Close()
}
