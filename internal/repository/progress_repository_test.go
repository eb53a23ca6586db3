package repository

import (
	"testing"
)

func TestProgressUpsertMergesAttempts(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	scores := []int{5, 9, 3}
	for _, score := range scores {
		if _, err := repo.Upsert("KEY-1", "s1", score, 10, score*10); err != nil {
			t.Fatalf("upsert score %d: %v", score, err)
		}
	}

	record, err := repo.FindBySection("KEY-1", "s1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if record.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", record.Attempts)
	}
	if record.BestScore != 9 {
		t.Errorf("best_score = %d, want 9", record.BestScore)
	}
	if record.Score != 3 {
		t.Errorf("score = %d, want 3 (last attempt)", record.Score)
	}
	if record.Percentage != 30 {
		t.Errorf("percentage = %d, want 30", record.Percentage)
	}
}

func TestProgressUpsertBestScoreNeverDrops(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	for _, score := range []int{9, 3, 5} {
		if _, err := repo.Upsert("KEY-1", "s1", score, 10, score*10); err != nil {
			t.Fatalf("upsert score %d: %v", score, err)
		}
	}

	record, err := repo.FindBySection("KEY-1", "s1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if record.BestScore != 9 {
		t.Errorf("best_score = %d, want 9", record.BestScore)
	}
	if record.Score != 5 {
		t.Errorf("score = %d, want 5", record.Score)
	}
}

func TestProgressIsolatedPerLicense(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	if _, err := repo.Upsert("KEY-1", "s1", 8, 10, 80); err != nil {
		t.Fatalf("upsert KEY-1: %v", err)
	}
	if _, err := repo.Upsert("KEY-2", "s1", 2, 10, 20); err != nil {
		t.Fatalf("upsert KEY-2: %v", err)
	}

	a, err := repo.FindBySection("KEY-1", "s1")
	if err != nil {
		t.Fatalf("find KEY-1: %v", err)
	}
	b, err := repo.FindBySection("KEY-2", "s1")
	if err != nil {
		t.Fatalf("find KEY-2: %v", err)
	}
	if a.Score != 8 || a.Attempts != 1 {
		t.Errorf("KEY-1 record = %+v, want score 8 attempts 1", a)
	}
	if b.Score != 2 || b.Attempts != 1 {
		t.Errorf("KEY-2 record = %+v, want score 2 attempts 1", b)
	}
}

func TestProgressFindByLicenseOrdersBySection(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	for _, section := range []string{"s3", "s1", "s2"} {
		if _, err := repo.Upsert("KEY-1", section, 5, 10, 50); err != nil {
			t.Fatalf("upsert %s: %v", section, err)
		}
	}

	records, err := repo.FindByLicense("KEY-1")
	if err != nil {
		t.Fatalf("find by license: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, want := range []string{"s1", "s2", "s3"} {
		if records[i].SectionID != want {
			t.Errorf("records[%d].SectionID = %q, want %q", i, records[i].SectionID, want)
		}
	}
}
