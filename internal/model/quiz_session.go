package model

import (
	"encoding/json"
	"time"
)

// QuizSession 单个激活码在单个章节上可恢复的答题现场，(license_key, section_id) 唯一。
// 题目顺序在开卷时固定，之后每答一题前移一位；同一章节重新开卷会替换旧现场。
type QuizSession struct {
	ID                   uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseKey           string          `gorm:"size:64;not null;uniqueIndex:idx_session_license_section" json:"license_key"`
	SectionID            string          `gorm:"size:100;not null;uniqueIndex:idx_session_license_section" json:"section_id"`
	QuestionIDs          json.RawMessage `gorm:"type:text;not null" json:"question_ids"`
	CurrentQuestionIndex int             `gorm:"not null;default:0" json:"current_question_index"`
	Score                int             `gorm:"not null;default:0" json:"score"`
	AnsweredQuestions    json.RawMessage `gorm:"type:text;not null" json:"answered_questions"`
	TimeRemaining        *int            `json:"time_remaining,omitempty"` // 剩余秒数；为空表示不限时
	IsStudyMode          bool            `gorm:"not null;default:false" json:"is_study_mode"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

func (s *QuizSession) QuestionIDList() ([]uint, error) {
	return decodeIDs(s.QuestionIDs)
}

func (s *QuizSession) AnsweredList() ([]uint, error) {
	return decodeIDs(s.AnsweredQuestions)
}

func decodeIDs(raw json.RawMessage) ([]uint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
