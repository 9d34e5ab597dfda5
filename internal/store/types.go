package store

// Action kinds journaled in the history ledger.
const (
	KindFirmwareBuild = "firmware_build"
	KindFirmwareFlash = "firmware_flash"
	KindRepoRollback  = "repo_rollback"
	KindMCUQuery      = "mcu_query"
)

// Action statuses.
const (
	StatusStarted = "started"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

// Action represents one journaled maintenance action.
type Action struct {
	ID         string
	Kind       string
	Target     string
	Status     string // started, ok, failed
	Detail     string
	StartedAt  int64
	FinishedAt int64 // zero while the action is still running
}

// Snapshot records a repository state captured right before a
// rollback, so the rollback can be undone by hand.
type Snapshot struct {
	ID      int64
	Repo    string
	Branch  string
	Commit  string
	Note    string
	TakenAt int64
}
