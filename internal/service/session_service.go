package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
	"quizkey_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// SessionService 维护可恢复的答题现场状态机：
// 无现场 -> 答题中 -> 结卷（写进度并删行）。
// 每个 (激活码, 章节) 最多一条现场，重新开卷即替换。
type SessionService struct {
	SessionRepo *repository.SessionRepository
	Progress    *ProgressService
}

func NewSessionService(sessionRepo *repository.SessionRepository, progress *ProgressService) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		Progress:    progress,
	}
}

// Start 开卷。已有未答完的现场直接丢弃，指针归零、得分清零、答过集合置空。
func (s *SessionService) Start(p model.Principal, sectionID string, questionIDs []uint, isStudyMode bool, timeRemaining *int) (*model.QuizSession, error) {
	if sectionID == "" {
		return nil, fmt.Errorf("%w: section_id is required", util.ErrValidation)
	}
	if len(questionIDs) == 0 {
		return nil, fmt.Errorf("%w: question_ids must not be empty", util.ErrValidation)
	}
	seen := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		if id == 0 {
			return nil, fmt.Errorf("%w: question id must be positive", util.ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", util.ErrValidation, id)
		}
		seen[id] = struct{}{}
	}
	if timeRemaining != nil && *timeRemaining < 0 {
		return nil, fmt.Errorf("%w: time_remaining must be non-negative", util.ErrValidation)
	}

	rawIDs, err := json.Marshal(questionIDs)
	if err != nil {
		return nil, err
	}

	sess := &model.QuizSession{
		LicenseKey:        p.LicenseKey,
		SectionID:         sectionID,
		QuestionIDs:       rawIDs,
		AnsweredQuestions: json.RawMessage("[]"),
		TimeRemaining:     timeRemaining,
		IsStudyMode:       isStudyMode,
	}
	if err := s.SessionRepo.Replace(sess); err != nil {
		return nil, err
	}
	monitoring.SessionsStarted.Inc()
	return sess, nil
}

// RecordAnswer 记一题。题目必须在开卷时固定的题序里，且没答过；
// 重复提交同一题返回 Conflict，分数绝不重复累计。
func (s *SessionService) RecordAnswer(p model.Principal, sectionID string, questionID uint, isCorrect bool, timeRemaining *int) (*model.QuizSession, error) {
	sess, err := s.find(p, sectionID)
	if err != nil {
		return nil, err
	}

	ids, err := sess.QuestionIDList()
	if err != nil {
		return nil, err
	}
	answered, err := sess.AnsweredList()
	if err != nil {
		return nil, err
	}

	if !containsID(ids, questionID) {
		return nil, fmt.Errorf("%w: question %d is not part of this session", util.ErrValidation, questionID)
	}
	if containsID(answered, questionID) {
		return nil, fmt.Errorf("%w: question %d already answered", util.ErrConflict, questionID)
	}
	if sess.CurrentQuestionIndex >= len(ids) {
		return nil, fmt.Errorf("%w: session already completed", util.ErrConflict)
	}

	rawAnswered, err := json.Marshal(append(answered, questionID))
	if err != nil {
		return nil, err
	}
	newScore := sess.Score
	if isCorrect {
		newScore++
	}

	ok, err := s.SessionRepo.AdvanceAtIndex(sess.ID, sess.CurrentQuestionIndex, rawAnswered, newScore, timeRemaining)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 另一台设备抢先写入了这一题位，或中途重新开卷换掉了现场
		return nil, fmt.Errorf("%w: concurrent answer submission", util.ErrConflict)
	}

	return s.find(p, sectionID)
}

// Resume 只读取现场，供中断后重建界面
func (s *SessionService) Resume(p model.Principal, sectionID string) (*model.QuizSession, error) {
	return s.find(p, sectionID)
}

// Finish 结卷：把现场里的得分合并进进度表，然后删掉现场行。
// 现场不跨结卷存活。
func (s *SessionService) Finish(p model.Principal, sectionID string) (*model.UserProgress, error) {
	sess, err := s.find(p, sectionID)
	if err != nil {
		return nil, err
	}

	ids, err := sess.QuestionIDList()
	if err != nil {
		return nil, err
	}
	total := len(ids)
	percentage := 0
	if total > 0 {
		percentage = sess.Score * 100 / total
	}

	record, err := s.Progress.RecordAttempt(p, sectionID, sess.Score, total, percentage)
	if err != nil {
		return nil, err
	}

	if err := s.SessionRepo.Delete(p.LicenseKey, sectionID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return record, nil
}

func (s *SessionService) find(p model.Principal, sectionID string) (*model.QuizSession, error) {
	if sectionID == "" {
		return nil, fmt.Errorf("%w: section_id is required", util.ErrValidation)
	}
	sess, err := s.SessionRepo.Find(p.LicenseKey, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active session", util.ErrNotFound)
		}
		return nil, err
	}
	return sess, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
