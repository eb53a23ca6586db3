package repository

import (
	"time"

	"quizkey_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 以单条 UPDATE 完成合并：覆盖最近一次成绩、attempts 加一、
// best_score 取历史最大值。没有命中行时插入首条记录；
// 两台设备同时首次提交撞上唯一约束时回退到合并路径重试。
func (r *ProgressRepository) Upsert(licenseKey, sectionID string, score, totalQuestions, percentage int) (*model.UserProgress, error) {
	now := time.Now()

	merge := func() (int64, error) {
		res := r.DB.Model(&model.UserProgress{}).
			Where("license_key = ? AND section_id = ?", licenseKey, sectionID).
			Updates(map[string]interface{}{
				"score":           score,
				"total_questions": totalQuestions,
				"percentage":      percentage,
				"attempts":        gorm.Expr("attempts + 1"),
				"best_score":      gorm.Expr("CASE WHEN ? > best_score THEN ? ELSE best_score END", score, score),
				"last_attempt_at": now,
				"updated_at":      now,
			})
		return res.RowsAffected, res.Error
	}

	affected, err := merge()
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		record := &model.UserProgress{
			LicenseKey:     licenseKey,
			SectionID:      sectionID,
			Score:          score,
			TotalQuestions: totalQuestions,
			Percentage:     percentage,
			Attempts:       1,
			BestScore:      score,
			LastAttemptAt:  now,
		}
		err := r.DB.Create(record).Error
		if err == nil {
			return record, nil
		}
		if !IsDuplicateKey(err) {
			return nil, err
		}
		if _, err := merge(); err != nil {
			return nil, err
		}
	}

	return r.FindBySection(licenseKey, sectionID)
}

func (r *ProgressRepository) FindBySection(licenseKey, sectionID string) (*model.UserProgress, error) {
	var p model.UserProgress
	err := r.DB.Where("license_key = ? AND section_id = ?", licenseKey, sectionID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) FindByLicense(licenseKey string) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("license_key = ?", licenseKey).
		Order("section_id ASC").
		Find(&records).Error
	return records, err
}
