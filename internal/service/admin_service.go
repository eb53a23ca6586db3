package service

import (
	"errors"
	"fmt"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// settings 表里的管理员口令键，存 bcrypt 哈希
const AdminPasswordSettingKey = "admin_password"

type AdminService struct {
	Settings *SettingService
	Cfg      *config.Config
}

func NewAdminService(settings *SettingService, cfg *config.Config) *AdminService {
	return &AdminService{
		Settings: settings,
		Cfg:      cfg,
	}
}

// Login 核对 settings 表里的口令哈希，通过则签发管理端 JWT
func (s *AdminService) Login(password string) (string, error) {
	setting, err := s.Settings.Get(AdminPasswordSettingKey)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(setting.SettingValue), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateAdminJWT(s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AdminService) ChangePassword(oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: new password must be at least 8 characters", util.ErrValidation)
	}

	setting, err := s.Settings.Get(AdminPasswordSettingKey)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(setting.SettingValue), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Settings.Set(AdminPasswordSettingKey, string(hashed))
}
