package model

import (
	"time"
)

// UserProgress 单个激活码在单个章节上的累计答题成绩，(license_key, section_id) 唯一。
// score/total_questions/percentage 总是记录最近一次提交，
// best_score 只升不降，attempts 每次提交加一。
type UserProgress struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseKey     string    `gorm:"size:64;not null;uniqueIndex:idx_progress_license_section" json:"license_key"`
	SectionID      string    `gorm:"size:100;not null;uniqueIndex:idx_progress_license_section" json:"section_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	Percentage     int       `gorm:"not null" json:"percentage"`
	Attempts       int       `gorm:"not null;default:1" json:"attempts"`
	BestScore      int       `gorm:"not null" json:"best_score"`
	LastAttemptAt  time.Time `json:"last_attempt_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ProgressOverview 学习面板聚合视图
type ProgressOverview struct {
	Records           []UserProgress `json:"records"`
	SectionsAttempted int            `json:"sections_attempted"`
	TotalAttempts     int            `json:"total_attempts"`
	AverageBestScore  float64        `json:"average_best_score"`
}
