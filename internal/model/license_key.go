package model

import (
	"time"
)

// swagger:model LicenseKey
type LicenseKey struct {
	Key        string     `gorm:"primaryKey;size:64;column:license_key" json:"key"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"` // 为空表示永久有效
	MaxDevices int        `gorm:"not null;default:3" json:"max_devices"`
	Notes      string     `gorm:"size:255" json:"notes"`
	CreatedBy  string     `gorm:"size:100" json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (LicenseKey) TableName() string {
	return "license_keys"
}

// Usable 激活码当前是否可用：启用且未过期
func (k *LicenseKey) Usable(now time.Time) bool {
	if !k.IsActive {
		return false
	}
	return k.ExpiresAt == nil || k.ExpiresAt.After(now)
}
