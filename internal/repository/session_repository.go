package repository

import (
	"encoding/json"
	"time"

	"quizkey_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Replace 同章节只保留一条现场：旧行直接丢弃，新行从头开始
func (r *SessionRepository) Replace(s *model.QuizSession) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("license_key = ? AND section_id = ?", s.LicenseKey, s.SectionID).
			Delete(&model.QuizSession{}).Error; err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *SessionRepository) Find(licenseKey, sectionID string) (*model.QuizSession, error) {
	var s model.QuizSession
	err := r.DB.Where("license_key = ? AND section_id = ?", licenseKey, sectionID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AdvanceAtIndex 对题位做比较并交换：锚定读到的那一行（Replace 换行
// 必换主键），且当前指针仍停在 expectedIndex 时才写入答题结果并前移
// 一位。返回 false 表示现场已被替换或并发提交抢先落库。
func (r *SessionRepository) AdvanceAtIndex(sessionID uint, expectedIndex int, answered json.RawMessage, newScore int, timeRemaining *int) (bool, error) {
	updates := map[string]interface{}{
		"answered_questions":     answered,
		"current_question_index": expectedIndex + 1,
		"score":                  newScore,
		"updated_at":             time.Now(),
	}
	if timeRemaining != nil {
		updates["time_remaining"] = *timeRemaining
	}

	res := r.DB.Model(&model.QuizSession{}).
		Where("id = ? AND current_question_index = ?", sessionID, expectedIndex).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SessionRepository) Delete(licenseKey, sectionID string) error {
	res := r.DB.Where("license_key = ? AND section_id = ?", licenseKey, sectionID).
		Delete(&model.QuizSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
