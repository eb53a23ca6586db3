package model

import (
	"testing"
	"time"
)

func TestLicenseKeyUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		key  LicenseKey
		want bool
	}{
		{"active without expiry", LicenseKey{IsActive: true}, true},
		{"active before expiry", LicenseKey{IsActive: true, ExpiresAt: &future}, true},
		{"active past expiry", LicenseKey{IsActive: true, ExpiresAt: &past}, false},
		{"inactive", LicenseKey{IsActive: false}, false},
		{"inactive with future expiry", LicenseKey{IsActive: false, ExpiresAt: &future}, false},
	}
	for _, tc := range cases {
		if got := tc.key.Usable(now); got != tc.want {
			t.Errorf("%s: Usable = %v, want %v", tc.name, got, tc.want)
		}
	}
}
