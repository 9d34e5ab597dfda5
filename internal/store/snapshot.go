package store

import (
	"database/sql"
	"time"
)

// SaveSnapshot records repo state taken right before a rollback. A
// zero TakenAt is filled with the current time.
func (db *DB) SaveSnapshot(s *Snapshot) error {
	if s.TakenAt == 0 {
		s.TakenAt = time.Now().UnixMilli()
	}
	_, err := db.Exec(`
		INSERT INTO snapshots (repo, branch, commit_hash, note, taken_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.Repo, s.Branch, s.Commit, s.Note, s.TakenAt)
	return err
}

// SnapshotsFor returns snapshots for one repo, newest first.
func (db *DB) SnapshotsFor(repo string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT id, repo, branch, commit_hash, note, taken_at
		FROM snapshots
		WHERE repo = ?
		ORDER BY taken_at DESC, id DESC
		LIMIT ?`, repo, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Repo, &s.Branch, &s.Commit, &s.Note, &s.TakenAt); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// LatestSnapshot returns the newest snapshot for repo, or nil when
// none was ever taken.
func (db *DB) LatestSnapshot(repo string) (*Snapshot, error) {
	var s Snapshot
	err := db.QueryRow(`
		SELECT id, repo, branch, commit_hash, note, taken_at
		FROM snapshots
		WHERE repo = ?
		ORDER BY taken_at DESC, id DESC
		LIMIT 1`, repo).
		Scan(&s.ID, &s.Repo, &s.Branch, &s.Commit, &s.Note, &s.TakenAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
