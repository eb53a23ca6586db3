package service

import (
	"errors"
	"testing"

	"quizkey_backend/internal/model"
	"quizkey_backend/internal/util"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(t, db)
	p := model.Principal{LicenseKey: "DEMO-1"}

	sess, err := sessions.Start(p, "s1", []uint{101, 102, 103}, false, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.CurrentQuestionIndex != 0 || sess.Score != 0 {
		t.Fatalf("fresh session index=%d score=%d", sess.CurrentQuestionIndex, sess.Score)
	}

	// 第一题答对
	sess, err = sessions.RecordAnswer(p, "s1", 101, true, nil)
	if err != nil {
		t.Fatalf("answer 101: %v", err)
	}
	if sess.Score != 1 || sess.CurrentQuestionIndex != 1 {
		t.Errorf("after 101: score=%d index=%d, want 1/1", sess.Score, sess.CurrentQuestionIndex)
	}

	// 第二题答错，得分不动
	sess, err = sessions.RecordAnswer(p, "s1", 103, false, nil)
	if err != nil {
		t.Fatalf("answer 103: %v", err)
	}
	if sess.Score != 1 || sess.CurrentQuestionIndex != 2 {
		t.Errorf("after 103: score=%d index=%d, want 1/2", sess.Score, sess.CurrentQuestionIndex)
	}
	answered, err := sess.AnsweredList()
	if err != nil {
		t.Fatalf("answered list: %v", err)
	}
	if len(answered) != 2 || answered[0] != 101 || answered[1] != 103 {
		t.Errorf("answered = %v, want [101 103]", answered)
	}

	// 重复提交同一题必须拒绝，得分不重复累计
	if _, err := sessions.RecordAnswer(p, "s1", 101, true, nil); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("re-answer 101 = %v, want ErrConflict", err)
	}

	// 中断后续卷
	sess, err = sessions.Resume(p, "s1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if sess.Score != 1 || sess.CurrentQuestionIndex != 2 {
		t.Errorf("resumed: score=%d index=%d, want 1/2", sess.Score, sess.CurrentQuestionIndex)
	}

	// 结卷写进度并删现场
	record, err := sessions.Finish(p, "s1")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if record.Score != 1 || record.TotalQuestions != 3 || record.Attempts != 1 {
		t.Errorf("progress = %+v, want score 1 of 3, attempts 1", record)
	}

	if _, err := sessions.Resume(p, "s1"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("resume after finish = %v, want ErrNotFound", err)
	}
}

func TestSessionStartReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(t, db)
	p := model.Principal{LicenseKey: "DEMO-1"}

	if _, err := sessions.Start(p, "s1", []uint{1, 2}, false, nil); err != nil {
		t.Fatalf("start first: %v", err)
	}
	if _, err := sessions.RecordAnswer(p, "s1", 1, true, nil); err != nil {
		t.Fatalf("answer: %v", err)
	}

	if _, err := sessions.Start(p, "s1", []uint{8, 9}, true, nil); err != nil {
		t.Fatalf("start second: %v", err)
	}

	sess, err := sessions.Resume(p, "s1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if sess.Score != 0 || sess.CurrentQuestionIndex != 0 {
		t.Errorf("replaced session score=%d index=%d, want fresh", sess.Score, sess.CurrentQuestionIndex)
	}
	if !sess.IsStudyMode {
		t.Error("is_study_mode not carried over")
	}
}

func TestSessionStartValidation(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(t, db)
	p := model.Principal{LicenseKey: "DEMO-1"}

	negative := -1

	cases := []struct {
		name          string
		sectionID     string
		questionIDs   []uint
		timeRemaining *int
	}{
		{"empty section", "", []uint{1}, nil},
		{"no questions", "s1", nil, nil},
		{"zero id", "s1", []uint{1, 0}, nil},
		{"duplicate ids", "s1", []uint{1, 2, 1}, nil},
		{"negative time", "s1", []uint{1}, &negative},
	}
	for _, tc := range cases {
		if _, err := sessions.Start(p, tc.sectionID, tc.questionIDs, false, tc.timeRemaining); !errors.Is(err, util.ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestSessionAnswerOutsideFixedOrder(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(t, db)
	p := model.Principal{LicenseKey: "DEMO-1"}

	if _, err := sessions.Start(p, "s1", []uint{1, 2}, false, nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := sessions.RecordAnswer(p, "s1", 99, true, nil); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("answer unknown question = %v, want ErrValidation", err)
	}
}

func TestSessionScopedPerLicense(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(t, db)

	a := model.Principal{LicenseKey: "KEY-A"}
	b := model.Principal{LicenseKey: "KEY-B"}

	if _, err := sessions.Start(a, "s1", []uint{1, 2}, false, nil); err != nil {
		t.Fatalf("start a: %v", err)
	}

	if _, err := sessions.Resume(b, "s1"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("resume under other license = %v, want ErrNotFound", err)
	}
}
