package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/util"
)

func TestLicenseValidate(t *testing.T) {
	db := newTestDB(t)
	licenses := newLicenseService(t, db)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	seed := []model.LicenseKey{
		{Key: "GOOD", IsActive: true},
		{Key: "GOOD-FUTURE", IsActive: true, ExpiresAt: &future},
		{Key: "EXPIRED", IsActive: true, ExpiresAt: &past},
		{Key: "DISABLED", IsActive: false},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed %s: %v", seed[i].Key, err)
		}
	}

	cases := []struct {
		key  string
		want bool
	}{
		{"GOOD", true},
		{"GOOD-FUTURE", true},
		{"  GOOD  ", true}, // 首尾空白容忍
		{"EXPIRED", false},
		{"DISABLED", false},
		{"UNKNOWN", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := licenses.Validate(tc.key)
		if err != nil {
			t.Fatalf("Validate(%q): %v", tc.key, err)
		}
		if got != tc.want {
			t.Errorf("Validate(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestLicenseAuthorizeUniformFailure(t *testing.T) {
	db := newTestDB(t)
	licenses := newLicenseService(t, db)

	past := time.Now().Add(-time.Hour)
	if err := db.Create(&model.LicenseKey{Key: "EXPIRED", IsActive: true, ExpiresAt: &past}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&model.LicenseKey{Key: "DISABLED", IsActive: false}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// 不存在、停用、过期必须是同一个错误
	for _, key := range []string{"UNKNOWN", "DISABLED", "EXPIRED"} {
		if _, err := licenses.Authorize(key); !errors.Is(err, util.ErrUnauthorized) {
			t.Errorf("Authorize(%s) = %v, want ErrUnauthorized", key, err)
		}
	}
}

func TestLicenseCreateGeneratesKey(t *testing.T) {
	licenses := newLicenseService(t, newTestDB(t))

	license, err := licenses.Create("", nil, 0, "batch-1", "tester")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pattern := regexp.MustCompile(`^[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`)
	if !pattern.MatchString(license.Key) {
		t.Errorf("generated key %q does not match XXXX-XXXX-XXXX-XXXX", license.Key)
	}
	if license.MaxDevices != 3 {
		t.Errorf("max_devices = %d, want default 3", license.MaxDevices)
	}
	if !license.IsActive {
		t.Error("new license should be active")
	}
}

func TestLicenseCreateRejectsPastExpiry(t *testing.T) {
	licenses := newLicenseService(t, newTestDB(t))

	past := time.Now().Add(-time.Minute)
	if _, err := licenses.Create("", &past, 3, "", ""); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("create with past expiry = %v, want ErrValidation", err)
	}
}

func TestLicenseCreateDuplicate(t *testing.T) {
	licenses := newLicenseService(t, newTestDB(t))

	if _, err := licenses.Create("SAME-KEY", nil, 3, "", ""); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := licenses.Create("SAME-KEY", nil, 3, "", ""); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("create duplicate = %v, want ErrConflict", err)
	}
}

func TestLicenseDeactivateStopsValidation(t *testing.T) {
	db := newTestDB(t)
	licenses := newLicenseService(t, db)

	if _, err := licenses.Create("KEY-1", nil, 3, "", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := licenses.Deactivate("KEY-1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	ok, err := licenses.Validate("KEY-1")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if ok {
		t.Error("deactivated key still validates")
	}

	if err := licenses.Deactivate("UNKNOWN"); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("deactivate unknown = %v, want ErrNotFound", err)
	}
}
