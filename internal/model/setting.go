package model

import (
	"time"
)

// AdminSetting 全局键值配置（如管理员口令哈希），按键原地覆盖，不保留历史
type AdminSetting struct {
	SettingKey   string    `gorm:"primaryKey;size:100" json:"setting_key"`
	SettingValue string    `gorm:"size:255;not null" json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}
