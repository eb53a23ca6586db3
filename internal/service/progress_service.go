package service

import (
	"errors"
	"fmt"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
	"quizkey_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// RecordAttempt 合并一次答题成绩到进度表，见 repository.Upsert 的原子语义
func (s *ProgressService) RecordAttempt(p model.Principal, sectionID string, score, totalQuestions, percentage int) (*model.UserProgress, error) {
	if sectionID == "" {
		return nil, fmt.Errorf("%w: section_id is required", util.ErrValidation)
	}
	if score < 0 || totalQuestions < 0 {
		return nil, fmt.Errorf("%w: score and total_questions must be non-negative", util.ErrValidation)
	}
	if score > totalQuestions {
		return nil, fmt.Errorf("%w: score cannot exceed total_questions", util.ErrValidation)
	}
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: percentage must be within [0,100]", util.ErrValidation)
	}

	record, err := s.ProgressRepo.Upsert(p.LicenseKey, sectionID, score, totalQuestions, percentage)
	if err != nil {
		return nil, err
	}
	monitoring.AttemptsRecorded.Inc()
	return record, nil
}

func (s *ProgressService) GetSection(p model.Principal, sectionID string) (*model.UserProgress, error) {
	if sectionID == "" {
		return nil, fmt.Errorf("%w: section_id is required", util.ErrValidation)
	}
	record, err := s.ProgressRepo.FindBySection(p.LicenseKey, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// Overview 学习面板：该激活码名下全部章节进度加聚合数字
func (s *ProgressService) Overview(p model.Principal) (*model.ProgressOverview, error) {
	records, err := s.ProgressRepo.FindByLicense(p.LicenseKey)
	if err != nil {
		return nil, err
	}

	overview := &model.ProgressOverview{
		Records:           records,
		SectionsAttempted: len(records),
	}
	if len(records) == 0 {
		return overview, nil
	}

	bestSum := 0
	for _, r := range records {
		overview.TotalAttempts += r.Attempts
		bestSum += r.BestScore
	}
	overview.AverageBestScore = float64(bestSum) / float64(len(records))
	return overview, nil
}
