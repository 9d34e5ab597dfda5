package store

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so run it again to check idempotency.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (actions + snapshots)", result.Version)
	}
}

// TestMigrateSchemaHasRequiredColumns inserts raw rows touching every
// column the query layer depends on, so a drifted migration fails
// loudly here instead of deep inside a menu action.
func TestMigrateSchemaHasRequiredColumns(t *testing.T) {
	db := testDB(t)

	requiredOps := []struct {
		desc  string
		query string
		args  []any
	}{
		{"insert action", "INSERT INTO actions (id, kind, target, status, detail, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?)", []any{"a1", KindFirmwareBuild, "klipper", StatusOK, "", 1000, 2000}},
		{"insert snapshot", "INSERT INTO snapshots (repo, branch, commit_hash, note, taken_at) VALUES (?, ?, ?, ?, ?)", []any{"klipper", "master", "abc123", "before rollback", 1000}},
	}

	for _, op := range requiredOps {
		t.Run(op.desc, func(t *testing.T) {
			if _, err := db.Exec(op.query, op.args...); err != nil {
				t.Fatalf("%s failed: %v", op.desc, err)
			}
		})
	}
}

func TestBeginAndFinishAction(t *testing.T) {
	db := testDB(t)

	id, err := db.BeginAction(KindFirmwareBuild, "klipper")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("BeginAction returned empty id")
	}

	a, err := db.GetAction(id)
	if err != nil {
		t.Fatal(err)
	}
	if a == nil {
		t.Fatal("action not found after BeginAction")
	}
	if a.Status != StatusStarted {
		t.Errorf("status = %q, want %q", a.Status, StatusStarted)
	}
	if a.FinishedAt != 0 {
		t.Errorf("finished_at = %d, want 0 while running", a.FinishedAt)
	}

	if err := db.FinishAction(id, StatusOK, "built in 42s"); err != nil {
		t.Fatal(err)
	}

	a, err = db.GetAction(id)
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != StatusOK {
		t.Errorf("status = %q, want %q", a.Status, StatusOK)
	}
	if a.Detail != "built in 42s" {
		t.Errorf("detail = %q, want %q", a.Detail, "built in 42s")
	}
	if a.FinishedAt == 0 {
		t.Error("finished_at not set by FinishAction")
	}
}

func TestGetActionMissing(t *testing.T) {
	db := testDB(t)

	a, err := db.GetAction("missing")
	if err != nil {
		t.Fatal(err)
	}
	if a != nil {
		t.Errorf("expected nil for missing action, got %v", a)
	}
}

func TestFinishUnknownActionIsNoop(t *testing.T) {
	db := testDB(t)

	if err := db.FinishAction("missing", StatusFailed, "x"); err != nil {
		t.Errorf("FinishAction(missing) error = %v", err)
	}
}

func TestRecentActionsNewestFirst(t *testing.T) {
	db := testDB(t)

	var ids []string
	for _, kind := range []string{KindFirmwareBuild, KindFirmwareFlash, KindRepoRollback} {
		id, err := db.BeginAction(kind, "klipper")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	actions, err := db.RecentActions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(actions))
	}
	// Insertion order reversed, even when started_at collides.
	for i, a := range actions {
		if want := ids[len(ids)-1-i]; a.ID != want {
			t.Errorf("actions[%d].ID = %q, want %q", i, a.ID, want)
		}
	}
}

func TestRecentActionsLimit(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 5; i++ {
		if _, err := db.BeginAction(KindMCUQuery, "mcu"); err != nil {
			t.Fatal(err)
		}
	}

	actions, err := db.RecentActions(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 2 {
		t.Errorf("got %d actions, want 2", len(actions))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := testDB(t)

	s := &Snapshot{Repo: "klipper", Branch: "master", Commit: "abc123", Note: "before rollback of 2"}
	if err := db.SaveSnapshot(s); err != nil {
		t.Fatal(err)
	}
	if s.TakenAt == 0 {
		t.Error("SaveSnapshot did not fill TakenAt")
	}

	snaps, err := db.SnapshotsFor("klipper", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps))
	}
	if snaps[0].Commit != "abc123" || snaps[0].Branch != "master" {
		t.Errorf("snapshot = %+v", snaps[0])
	}
}

func TestSnapshotsForFiltersByRepo(t *testing.T) {
	db := testDB(t)

	if err := db.SaveSnapshot(&Snapshot{Repo: "klipper", Commit: "aaa"}); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveSnapshot(&Snapshot{Repo: "moonraker", Commit: "bbb"}); err != nil {
		t.Fatal(err)
	}

	snaps, err := db.SnapshotsFor("moonraker", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 1 || snaps[0].Commit != "bbb" {
		t.Errorf("snapshots = %+v, want only moonraker's", snaps)
	}
}

func TestLatestSnapshot(t *testing.T) {
	db := testDB(t)

	if s, err := db.LatestSnapshot("klipper"); err != nil || s != nil {
		t.Fatalf("LatestSnapshot on empty repo = %v, %v, want nil, nil", s, err)
	}

	if err := db.SaveSnapshot(&Snapshot{Repo: "klipper", Commit: "old", TakenAt: 1000}); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveSnapshot(&Snapshot{Repo: "klipper", Commit: "new", TakenAt: 2000}); err != nil {
		t.Fatal(err)
	}

	s, err := db.LatestSnapshot("klipper")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.Commit != "new" {
		t.Errorf("LatestSnapshot = %+v, want the newest", s)
	}
}
