package service

import (
	"errors"
	"testing"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/util"
)

func newProgressService(t *testing.T) *ProgressService {
	t.Helper()
	return NewProgressService(repository.NewProgressRepository(newTestDB(t)))
}

func TestRecordAttemptValidation(t *testing.T) {
	progress := newProgressService(t)
	p := model.Principal{LicenseKey: "KEY-1"}

	cases := []struct {
		name       string
		sectionID  string
		score      int
		total      int
		percentage int
	}{
		{"empty section", "", 5, 10, 50},
		{"negative score", "s1", -1, 10, 0},
		{"score above total", "s1", 11, 10, 100},
		{"percentage below range", "s1", 5, 10, -1},
		{"percentage above range", "s1", 5, 10, 101},
	}
	for _, tc := range cases {
		if _, err := progress.RecordAttempt(p, tc.sectionID, tc.score, tc.total, tc.percentage); !errors.Is(err, util.ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestRecordAttemptAndGetSection(t *testing.T) {
	progress := newProgressService(t)
	p := model.Principal{LicenseKey: "KEY-1"}

	if _, err := progress.RecordAttempt(p, "s1", 7, 10, 70); err != nil {
		t.Fatalf("record: %v", err)
	}

	record, err := progress.GetSection(p, "s1")
	if err != nil {
		t.Fatalf("get section: %v", err)
	}
	if record.Score != 7 || record.BestScore != 7 || record.Attempts != 1 {
		t.Errorf("record = %+v, want score 7 best 7 attempts 1", record)
	}

	if _, err := progress.GetSection(p, "missing"); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("get missing section = %v, want ErrNotFound", err)
	}
}

func TestOverviewAggregates(t *testing.T) {
	progress := newProgressService(t)
	p := model.Principal{LicenseKey: "KEY-1"}

	// s1: 两次提交，best 8；s2: 一次提交，best 4
	attempts := []struct {
		section string
		score   int
	}{
		{"s1", 8},
		{"s1", 6},
		{"s2", 4},
	}
	for _, a := range attempts {
		if _, err := progress.RecordAttempt(p, a.section, a.score, 10, a.score*10); err != nil {
			t.Fatalf("record %s/%d: %v", a.section, a.score, err)
		}
	}

	overview, err := progress.Overview(p)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.SectionsAttempted != 2 {
		t.Errorf("sections_attempted = %d, want 2", overview.SectionsAttempted)
	}
	if overview.TotalAttempts != 3 {
		t.Errorf("total_attempts = %d, want 3", overview.TotalAttempts)
	}
	if overview.AverageBestScore != 6 {
		t.Errorf("average_best_score = %v, want 6", overview.AverageBestScore)
	}
}

func TestOverviewEmpty(t *testing.T) {
	progress := newProgressService(t)

	overview, err := progress.Overview(model.Principal{LicenseKey: "KEY-NONE"})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.SectionsAttempted != 0 || overview.TotalAttempts != 0 || overview.AverageBestScore != 0 {
		t.Errorf("empty overview = %+v, want zeros", overview)
	}
}
