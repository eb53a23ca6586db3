package service

import (
	"testing"
	"time"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.LicenseKey{},
		&model.UserProgress{},
		&model.QuizSession{},
		&model.Bookmark{},
		&model.WrongAnswer{},
		&model.AdminSetting{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		License: config.LicenseConfig{
			CacheTTLSeconds: 60,
		},
	}
}

// Redis 不参与单测，缓存分支由 nil 客户端短路
func newLicenseService(t *testing.T, db *gorm.DB) *LicenseService {
	t.Helper()
	return NewLicenseService(repository.NewLicenseRepository(db), nil, testConfig())
}

func newSessionService(t *testing.T, db *gorm.DB) *SessionService {
	t.Helper()
	progress := NewProgressService(repository.NewProgressRepository(db))
	return NewSessionService(repository.NewSessionRepository(db), progress)
}
