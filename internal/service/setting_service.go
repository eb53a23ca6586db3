package service

import (
	"errors"
	"fmt"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"

	"gorm.io/gorm"
)

type SettingService struct {
	SettingRepo *repository.SettingRepository
}

func NewSettingService(settingRepo *repository.SettingRepository) *SettingService {
	return &SettingService{SettingRepo: settingRepo}
}

func (s *SettingService) Get(key string) (*model.AdminSetting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", util.ErrValidation)
	}
	setting, err := s.SettingRepo.Get(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: setting key is required", util.ErrValidation)
	}
	return s.SettingRepo.Set(key, value)
}
