package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BeginAction journals the start of a maintenance action and returns
// its id.
func (db *DB) BeginAction(kind, target string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO actions (id, kind, target, status, detail, started_at)
		VALUES (?, ?, ?, 'started', '', ?)`,
		id, kind, target, now)
	if err != nil {
		return "", err
	}
	return id, nil
}

// FinishAction records the outcome of a started action. Finishing an
// unknown id is a no-op.
func (db *DB) FinishAction(id, status, detail string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE actions SET status = ?, detail = ?, finished_at = ?
		WHERE id = ?`,
		status, detail, now, id)
	return err
}

// GetAction returns one action, or nil when the id is unknown.
func (db *DB) GetAction(id string) (*Action, error) {
	var a Action
	err := db.QueryRow(`
		SELECT id, kind, target, status, detail, started_at, finished_at
		FROM actions WHERE id = ?`, id).
		Scan(&a.ID, &a.Kind, &a.Target, &a.Status, &a.Detail, &a.StartedAt, &a.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// RecentActions returns the newest actions first. Ties on started_at
// keep insertion order, newest first.
func (db *DB) RecentActions(limit int) ([]Action, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT id, kind, target, status, detail, started_at, finished_at
		FROM actions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var actions []Action
	for rows.Next() {
		var a Action
		if err := rows.Scan(&a.ID, &a.Kind, &a.Target, &a.Status, &a.Detail, &a.StartedAt, &a.FinishedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
