package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	got := BaseDir()
	want := filepath.Join(home, ".kmaint")
	if got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath()
	if !strings.HasSuffix(got, filepath.Join(".kmaint", "config.toml")) {
		t.Errorf("ConfigPath() = %q, want suffix .kmaint/config.toml", got)
	}
}

func TestHistoryDBPath(t *testing.T) {
	got := HistoryDBPath()
	if !strings.HasSuffix(got, filepath.Join(".kmaint", "history.db")) {
		t.Errorf("HistoryDBPath() = %q, want suffix .kmaint/history.db", got)
	}
}

func TestLogPath(t *testing.T) {
	got := LogPath()
	if !strings.HasSuffix(got, filepath.Join("logs", "kmaint.log")) {
		t.Errorf("LogPath() = %q, want suffix logs/kmaint.log", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}

	for _, d := range []string{BaseDir(), LogDir()} {
		info, err := os.Stat(d)
		if err != nil {
			t.Fatalf("dir not created: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", d)
		}
		if perm := info.Mode().Perm(); perm != 0700 {
			t.Errorf("%s perm = %o, want 0700", d, perm)
		}
	}
}
