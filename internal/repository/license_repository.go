package repository

import (
	"time"

	"quizkey_backend/internal/model"

	"gorm.io/gorm"
)

type LicenseRepository struct {
	DB *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{DB: db}
}

func (r *LicenseRepository) Create(key *model.LicenseKey) error {
	return r.DB.Create(key).Error
}

func (r *LicenseRepository) FindByKey(key string) (*model.LicenseKey, error) {
	var k model.LicenseKey
	if err := r.DB.Where("license_key = ?", key).First(&k).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *LicenseRepository) List() ([]model.LicenseKey, error) {
	var keys []model.LicenseKey
	err := r.DB.Order("created_at DESC").Find(&keys).Error
	return keys, err
}

// IsValid 纯读校验：存在、启用且未过期。单条索引点查，可高频调用。
func (r *LicenseRepository) IsValid(key string, now time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LicenseKey{}).
		Where("license_key = ? AND is_active = ?", key, true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Count(&count).Error
	return count > 0, err
}

// Deactivate 软停用，依赖记录全部保留
func (r *LicenseRepository) Deactivate(key string) error {
	res := r.DB.Model(&model.LicenseKey{}).
		Where("license_key = ?", key).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LicenseRepository) UpdateMeta(key string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	res := r.DB.Model(&model.LicenseKey{}).
		Where("license_key = ?", key).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade 硬删除激活码并级联清掉它名下的全部记录
func (r *LicenseRepository) DeleteCascade(key string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&model.UserProgress{},
			&model.QuizSession{},
			&model.Bookmark{},
			&model.WrongAnswer{},
		}
		for _, m := range dependents {
			if err := tx.Where("license_key = ?", key).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Where("license_key = ?", key).Delete(&model.LicenseKey{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
