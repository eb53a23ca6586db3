package repository

import (
	"time"

	"quizkey_backend/internal/model"

	"gorm.io/gorm"
)

type WrongAnswerRepository struct {
	DB *gorm.DB
}

func NewWrongAnswerRepository(db *gorm.DB) *WrongAnswerRepository {
	return &WrongAnswerRepository{DB: db}
}

// RecordWrong 首次答错插入计数 1，再次答错原子加一并刷新时间。
// 计数永不回退。
func (r *WrongAnswerRepository) RecordWrong(licenseKey string, questionID uint) (*model.WrongAnswer, error) {
	now := time.Now()

	bump := func() (int64, error) {
		res := r.DB.Model(&model.WrongAnswer{}).
			Where("license_key = ? AND question_id = ?", licenseKey, questionID).
			Updates(map[string]interface{}{
				"wrong_count":   gorm.Expr("wrong_count + 1"),
				"last_wrong_at": now,
				"updated_at":    now,
			})
		return res.RowsAffected, res.Error
	}

	affected, err := bump()
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		record := &model.WrongAnswer{
			LicenseKey:  licenseKey,
			QuestionID:  questionID,
			WrongCount:  1,
			LastWrongAt: now,
		}
		err := r.DB.Create(record).Error
		if err == nil {
			return record, nil
		}
		if !IsDuplicateKey(err) {
			return nil, err
		}
		if _, err := bump(); err != nil {
			return nil, err
		}
	}

	return r.find(licenseKey, questionID)
}

func (r *WrongAnswerRepository) find(licenseKey string, questionID uint) (*model.WrongAnswer, error) {
	var w model.WrongAnswer
	err := r.DB.Where("license_key = ? AND question_id = ?", licenseKey, questionID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// List 按答错次数降序返回，错得最多的排最前
func (r *WrongAnswerRepository) List(licenseKey string) ([]model.WrongAnswer, error) {
	var records []model.WrongAnswer
	err := r.DB.Where("license_key = ?", licenseKey).
		Order("wrong_count DESC, last_wrong_at DESC").
		Find(&records).Error
	return records, err
}
