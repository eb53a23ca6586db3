package repository

import (
	"testing"

	"quizkey_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例一个独立的内存库
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
	// 内存库随连接销毁，锁定单连接
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
