package model

import (
	"time"
)

// Bookmark 题目收藏标记，(license_key, question_id) 唯一，无分数语义
type Bookmark struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseKey string    `gorm:"size:64;not null;uniqueIndex:idx_bookmark_license_question" json:"license_key"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_bookmark_license_question" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// WrongAnswer 错题记录，(license_key, question_id) 唯一。
// 同一题再次答错时计数加一，只增不减，供错题本按频次复习。
type WrongAnswer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseKey  string    `gorm:"size:64;not null;uniqueIndex:idx_wrong_license_question" json:"license_key"`
	QuestionID  uint      `gorm:"not null;uniqueIndex:idx_wrong_license_question" json:"question_id"`
	WrongCount  int       `gorm:"not null;default:1" json:"wrong_count"`
	LastWrongAt time.Time `json:"last_wrong_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (WrongAnswer) TableName() string {
	return "wrong_answers"
}
