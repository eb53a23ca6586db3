package service

import (
	"fmt"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
)

type BookmarkService struct {
	BookmarkRepo *repository.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo *repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{BookmarkRepo: bookmarkRepo}
}

func (s *BookmarkService) Add(p model.Principal, questionID uint) error {
	if questionID == 0 {
		return fmt.Errorf("%w: question_id is required", util.ErrValidation)
	}
	return s.BookmarkRepo.Add(p.LicenseKey, questionID)
}

func (s *BookmarkService) Remove(p model.Principal, questionID uint) error {
	if questionID == 0 {
		return fmt.Errorf("%w: question_id is required", util.ErrValidation)
	}
	return s.BookmarkRepo.Remove(p.LicenseKey, questionID)
}

func (s *BookmarkService) List(p model.Principal) ([]model.Bookmark, error) {
	return s.BookmarkRepo.List(p.LicenseKey)
}
