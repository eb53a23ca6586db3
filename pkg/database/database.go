package database

import (
	"fmt"
	"log"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	logMode := logger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不动表结构，需显式 -migrate
	if cfg.Server.Mode == "debug" || cfg.ForceMigrate || cfg.MigrateOnly {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	if err := seedAdminPassword(db, cfg.Admin.DefaultPassword); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.LicenseKey{},
		&model.UserProgress{},
		&model.QuizSession{},
		&model.Bookmark{},
		&model.WrongAnswer{},
		&model.AdminSetting{},
	)
}

// seedAdminPassword 首次启动写入管理员口令哈希，已存在则不覆盖
func seedAdminPassword(db *gorm.DB, defaultPassword string) error {
	if defaultPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.AdminSetting{}).
		Where("setting_key = ?", "admin_password").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.AdminSetting{
		SettingKey:   "admin_password",
		SettingValue: string(hash),
	}).Error
}
