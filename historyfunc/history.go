package historyfunc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const DBFileName = "history.db"

var ErrClosed = errors.New("history store is closed")

// Run is one bulk replace pass over the document.
type Run struct {
	ID           int64     `gorm:"primaryKey"`
	CreatedAt    time.Time `gorm:"not null;index"`
	Mode         string    `gorm:"not null"`
	FileName     string
	PairCount    int `gorm:"not null"`
	Replacements int `gorm:"not null"`
}

// RecentFile is a file the editor opened or saved.
type RecentFile struct {
	Path     string    `gorm:"primaryKey"`
	OpenedAt time.Time `gorm:"not null;index"`
}

// Store keeps the replace history and recent files in SQLite.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Open creates or opens the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("error creating history directory: %w", err)
	}
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("error opening history %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}, &RecentFile{}); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("error migrating history: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// RecordRun stores run, stamping it with the current time if unset.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("error recording replace run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("error reading replace history: %w", err)
	}
	return runs, nil
}

// TouchRecentFile marks path as just used.
func (s *Store) TouchRecentFile(ctx context.Context, path string) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	rf := RecentFile{Path: path, OpenedAt: s.now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rf).Error
	if err != nil {
		return fmt.Errorf("error recording recent file: %w", err)
	}
	return nil
}

// RecentFiles returns up to limit paths, most recently used first.
func (s *Store) RecentFiles(ctx context.Context, limit int) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	var files []RecentFile
	err := s.db.WithContext(ctx).
		Order("opened_at desc").
		Limit(limit).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("error reading recent files: %w", err)
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := closeDB(s.db)
	s.db = nil
	return err
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
