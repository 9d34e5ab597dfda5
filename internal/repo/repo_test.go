package repo

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"kmaint/internal/store"
)

// stubRunner serves canned git output and records every mutating
// command, so rollbacks can be tested without a real repository.
type stubRunner struct {
	outputs map[string]string
	runErr  error
	runs    []recordedRun
}

type recordedRun struct {
	dir  string
	line string
}

func (s *stubRunner) Run(_ context.Context, dir, name string, args ...string) error {
	s.runs = append(s.runs, recordedRun{dir: dir, line: commandLine(name, args)})
	return s.runErr
}

func (s *stubRunner) RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	return s.Run(ctx, dir, name, args...)
}

func (s *stubRunner) Output(_ context.Context, _, name string, args ...string) (string, error) {
	line := commandLine(name, args)
	out, ok := s.outputs[line]
	if !ok {
		return "", errors.New("unexpected command: " + line)
	}
	return out, nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func gitStub() *stubRunner {
	return &stubRunner{outputs: map[string]string{
		"git rev-parse --abbrev-ref HEAD": "master",
		"git rev-parse --short HEAD":      "abc1234",
	}}
}

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCurrentBranchAndCommit(t *testing.T) {
	svc := NewService(gitStub(), testDB(t), nil)

	branch, err := svc.CurrentBranch(context.Background(), "/tmp/klipper")
	if err != nil {
		t.Fatal(err)
	}
	if branch != "master" {
		t.Errorf("branch = %q, want %q", branch, "master")
	}

	commit, err := svc.CurrentCommit(context.Background(), "/tmp/klipper")
	if err != nil {
		t.Fatal(err)
	}
	if commit != "abc1234" {
		t.Errorf("commit = %q, want %q", commit, "abc1234")
	}
}

func TestRecentCommits(t *testing.T) {
	run := gitStub()
	run.outputs["git log -n 3 --pretty=format:%h %s"] = "abc1234 fix probe offsets\ndef5678 bump version\n9876543 initial import"
	svc := NewService(run, testDB(t), nil)

	commits, err := svc.RecentCommits(context.Background(), "/tmp/klipper", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(commits) != 3 {
		t.Fatalf("got %d commits, want 3", len(commits))
	}
	if commits[0].Hash != "abc1234" || commits[0].Subject != "fix probe offsets" {
		t.Errorf("commits[0] = %+v", commits[0])
	}
	if commits[2].Subject != "initial import" {
		t.Errorf("commits[2] = %+v", commits[2])
	}
}

func TestRecentCommitsEmptyRepo(t *testing.T) {
	run := gitStub()
	run.outputs["git log -n 5 --pretty=format:%h %s"] = ""
	svc := NewService(run, testDB(t), nil)

	commits, err := svc.RecentCommits(context.Background(), "/tmp/klipper", 5)
	if err != nil {
		t.Fatal(err)
	}
	if commits != nil {
		t.Errorf("commits = %v, want nil", commits)
	}
}

func TestRollBackSnapshotsAndJournals(t *testing.T) {
	run := gitStub()
	db := testDB(t)
	svc := NewService(run, db, nil)

	if err := svc.RollBack(context.Background(), "klipper", "/tmp/klipper", 2); err != nil {
		t.Fatal(err)
	}

	if len(run.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(run.runs))
	}
	if got := run.runs[0]; got.line != "git reset --hard HEAD~2" || got.dir != "/tmp/klipper" {
		t.Errorf("run = %+v", got)
	}

	snap, err := db.LatestSnapshot("klipper")
	if err != nil {
		t.Fatal(err)
	}
	if snap == nil {
		t.Fatal("no snapshot recorded")
	}
	if snap.Branch != "master" || snap.Commit != "abc1234" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Note != "before rollback of 2" {
		t.Errorf("note = %q", snap.Note)
	}

	actions, err := db.RecentActions(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 1 {
		t.Fatal("no action journaled")
	}
	a := actions[0]
	if a.Kind != store.KindRepoRollback || a.Status != store.StatusOK {
		t.Errorf("action = %+v", a)
	}
	if a.FinishedAt == 0 {
		t.Error("action not finished")
	}
	if !strings.Contains(a.Detail, "rolled back 2") {
		t.Errorf("detail = %q", a.Detail)
	}
}

func TestRollBackFailureMarksAction(t *testing.T) {
	run := gitStub()
	run.runErr = errors.New("boom")
	db := testDB(t)
	svc := NewService(run, db, nil)

	err := svc.RollBack(context.Background(), "klipper", "/tmp/klipper", 1)
	if err == nil {
		t.Fatal("expected error from failed reset")
	}
	if !strings.Contains(err.Error(), "reset klipper") {
		t.Errorf("error = %v", err)
	}

	actions, err := db.RecentActions(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 1 {
		t.Fatal("failure not journaled")
	}
	if actions[0].Status != store.StatusFailed {
		t.Errorf("status = %q, want %q", actions[0].Status, store.StatusFailed)
	}
	if actions[0].Detail != "boom" {
		t.Errorf("detail = %q", actions[0].Detail)
	}
}

func TestRollBackRejectsZeroDepth(t *testing.T) {
	run := gitStub()
	svc := NewService(run, testDB(t), nil)

	if err := svc.RollBack(context.Background(), "klipper", "/tmp/klipper", 0); err == nil {
		t.Fatal("expected error for depth 0")
	}
	if len(run.runs) != 0 {
		t.Errorf("reset ran despite invalid depth: %v", run.runs)
	}
}
