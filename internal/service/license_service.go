package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
	"quizkey_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const licenseCachePrefix = "license:valid:"

type LicenseService struct {
	LicenseRepo *repository.LicenseRepository
	Redis       *redis.Client
	Cfg         *config.Config
}

func NewLicenseService(licenseRepo *repository.LicenseRepository, rdb *redis.Client, cfg *config.Config) *LicenseService {
	return &LicenseService{
		LicenseRepo: licenseRepo,
		Redis:       rdb,
		Cfg:         cfg,
	}
}

// Validate 热路径校验。正向结果进 Redis 短缓存；
// 缓存不可用时直接落库，正确性不依赖缓存。
func (s *LicenseService) Validate(key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, nil
	}

	ctx := context.Background()
	cacheKey := licenseCachePrefix + key

	if s.Redis != nil {
		if _, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			monitoring.LicenseValidations.WithLabelValues("valid").Inc()
			return true, nil
		}
	}

	ok, err := s.LicenseRepo.IsValid(key, time.Now())
	if err != nil {
		return false, err
	}

	if ok {
		monitoring.LicenseValidations.WithLabelValues("valid").Inc()
		if s.Redis != nil {
			s.Redis.Set(ctx, cacheKey, "1", time.Duration(s.Cfg.License.CacheTTLSeconds)*time.Second)
		}
	} else {
		monitoring.LicenseValidations.WithLabelValues("invalid").Inc()
	}
	return ok, nil
}

// Authorize 校验并产出授权主体。不存在、停用、过期一律返回同一个
// Unauthorized，不给调用方区分的余地。
func (s *LicenseService) Authorize(key string) (model.Principal, error) {
	ok, err := s.Validate(key)
	if err != nil {
		return model.Principal{}, err
	}
	if !ok {
		return model.Principal{}, util.ErrUnauthorized
	}
	return model.Principal{LicenseKey: strings.TrimSpace(key)}, nil
}

// Lookup 管理流程用的完整读取，不走热路径缓存
func (s *LicenseService) Lookup(key string) (*model.LicenseKey, error) {
	k, err := s.LicenseRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (s *LicenseService) List() ([]model.LicenseKey, error) {
	return s.LicenseRepo.List()
}

func (s *LicenseService) Create(customKey string, expiresAt *time.Time, maxDevices int, notes, createdBy string) (*model.LicenseKey, error) {
	key := strings.TrimSpace(customKey)
	if key == "" {
		key = generateLicenseKey()
	}
	if maxDevices <= 0 {
		maxDevices = 3
	}
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: expires_at is in the past", util.ErrValidation)
	}

	k := &model.LicenseKey{
		Key:        key,
		IsActive:   true,
		ExpiresAt:  expiresAt,
		MaxDevices: maxDevices,
		Notes:      notes,
		CreatedBy:  createdBy,
	}
	if err := s.LicenseRepo.Create(k); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: license key already exists", util.ErrConflict)
		}
		return nil, err
	}
	return k, nil
}

func (s *LicenseService) Deactivate(key string) error {
	if err := s.LicenseRepo.Deactivate(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}
	s.invalidateCache(key)
	return nil
}

func (s *LicenseService) UpdateMeta(key string, maxDevices *int, notes *string, expiresAt *time.Time, clearExpiry bool) error {
	updates := map[string]interface{}{}
	if maxDevices != nil {
		if *maxDevices <= 0 {
			return fmt.Errorf("%w: max_devices must be positive", util.ErrValidation)
		}
		updates["max_devices"] = *maxDevices
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	if clearExpiry {
		updates["expires_at"] = nil
	} else if expiresAt != nil {
		updates["expires_at"] = *expiresAt
	}

	if err := s.LicenseRepo.UpdateMeta(key, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}
	s.invalidateCache(key)
	return nil
}

// Delete 硬删除，名下的进度/现场/收藏/错题一并清掉
func (s *LicenseService) Delete(key string) error {
	if err := s.LicenseRepo.DeleteCascade(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}
	s.invalidateCache(key)
	return nil
}

func (s *LicenseService) invalidateCache(key string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), licenseCachePrefix+key)
}

// generateLicenseKey 生成 XXXX-XXXX-XXXX-XXXX 形式的激活码
func generateLicenseKey() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s-%s-%s", raw[0:4], raw[4:8], raw[8:12], raw[12:16])
}
