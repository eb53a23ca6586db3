package repository

import (
	"quizkey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

// Add 幂等收藏：重复收藏依赖唯一约束吞掉，不报错不重复
func (r *BookmarkRepository) Add(licenseKey string, questionID uint) error {
	b := &model.Bookmark{
		LicenseKey: licenseKey,
		QuestionID: questionID,
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(b).Error
}

// Remove 取消收藏，不存在时静默成功
func (r *BookmarkRepository) Remove(licenseKey string, questionID uint) error {
	return r.DB.Where("license_key = ? AND question_id = ?", licenseKey, questionID).
		Delete(&model.Bookmark{}).Error
}

func (r *BookmarkRepository) List(licenseKey string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.DB.Where("license_key = ?", licenseKey).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
