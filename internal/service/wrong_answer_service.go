package service

import (
	"fmt"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
)

type WrongAnswerService struct {
	WrongAnswerRepo *repository.WrongAnswerRepository
}

func NewWrongAnswerService(wrongAnswerRepo *repository.WrongAnswerRepository) *WrongAnswerService {
	return &WrongAnswerService{WrongAnswerRepo: wrongAnswerRepo}
}

func (s *WrongAnswerService) RecordWrong(p model.Principal, questionID uint) (*model.WrongAnswer, error) {
	if questionID == 0 {
		return nil, fmt.Errorf("%w: question_id is required", util.ErrValidation)
	}
	return s.WrongAnswerRepo.RecordWrong(p.LicenseKey, questionID)
}

func (s *WrongAnswerService) List(p model.Principal) ([]model.WrongAnswer, error) {
	return s.WrongAnswerRepo.List(p.LicenseKey)
}
