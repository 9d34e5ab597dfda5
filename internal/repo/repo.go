package repo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kmaint/internal/shell"
	"kmaint/internal/store"
)

// Commit is one entry of a repository's recent history.
type Commit struct {
	Hash    string
	Subject string
}

// Service answers git queries and performs rollbacks for a managed
// repository, journaling every rollback in the history ledger.
type Service struct {
	run    shell.Runner
	db     *store.DB
	logger *zap.Logger
}

func NewService(run shell.Runner, db *store.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{run: run, db: db, logger: logger}
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when
// detached.
func (s *Service) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := s.run.Output(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	return out, nil
}

// CurrentCommit returns the abbreviated hash of HEAD.
func (s *Service) CurrentCommit(ctx context.Context, dir string) (string, error) {
	out, err := s.run.Output(ctx, dir, "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current commit: %w", err)
	}
	return out, nil
}

// RecentCommits returns up to n commits reachable from HEAD, newest
// first.
func (s *Service) RecentCommits(ctx context.Context, dir string, n int) ([]Commit, error) {
	out, err := s.run.Output(ctx, dir, "git", "log", "-n", fmt.Sprint(n), "--pretty=format:%h %s")
	if err != nil {
		return nil, fmt.Errorf("recent commits: %w", err)
	}
	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		hash, subject, _ := strings.Cut(line, " ")
		if hash == "" {
			continue
		}
		commits = append(commits, Commit{Hash: hash, Subject: subject})
	}
	return commits, nil
}

// RollBack discards the last n commits with a hard reset. The branch
// and commit being abandoned are snapshotted first so the reset can be
// undone by hand.
func (s *Service) RollBack(ctx context.Context, name, dir string, n int) error {
	if n < 1 {
		return fmt.Errorf("rollback depth %d: must be at least 1", n)
	}

	branch, err := s.CurrentBranch(ctx, dir)
	if err != nil {
		return err
	}
	commit, err := s.CurrentCommit(ctx, dir)
	if err != nil {
		return err
	}

	snap := &store.Snapshot{
		Repo:   name,
		Branch: branch,
		Commit: commit,
		Note:   fmt.Sprintf("before rollback of %d", n),
	}
	if err := s.db.SaveSnapshot(snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	id, err := s.db.BeginAction(store.KindRepoRollback, name)
	if err != nil {
		return fmt.Errorf("journal rollback: %w", err)
	}

	if err := s.run.Run(ctx, dir, "git", "reset", "--hard", fmt.Sprintf("HEAD~%d", n)); err != nil {
		_ = s.db.FinishAction(id, store.StatusFailed, err.Error())
		return fmt.Errorf("reset %s: %w", name, err)
	}

	detail := fmt.Sprintf("%s@%s rolled back %d", branch, commit, n)
	if err := s.db.FinishAction(id, store.StatusOK, detail); err != nil {
		return fmt.Errorf("journal rollback: %w", err)
	}
	s.logger.Info("repository rolled back",
		zap.String("repo", name),
		zap.String("was", commit),
		zap.Int("commits", n))
	return nil
}
