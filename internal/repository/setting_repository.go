package repository

import (
	"time"

	"quizkey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) Get(key string) (*model.AdminSetting, error) {
	var s model.AdminSetting
	if err := r.DB.Where("setting_key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Set 单语句 upsert，按键原地覆盖
func (r *SettingRepository) Set(key, value string) error {
	now := time.Now()
	s := &model.AdminSetting{
		SettingKey:   key,
		SettingValue: value,
		UpdatedAt:    now,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"setting_value": value,
			"updated_at":    now,
		}),
	}).Create(s).Error
}
