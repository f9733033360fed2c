package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVersionFile_OnlyFillsDefaults(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	t.Cleanup(func() { Version, Build, GitCommit = origVersion, origBuild, origCommit })

	Version, Build, GitCommit = "dev", "unknown", "abc123"

	path := filepath.Join(t.TempDir(), ".version")
	content := "# generated\nversion: 1.2.0\nbuild: 2026-10-01\ncommit: ffff\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loadVersionFile(path)

	if Version != "1.2.0" || Build != "2026-10-01" {
		t.Errorf("got version=%q build=%q", Version, Build)
	}
	if GitCommit != "abc123" {
		t.Errorf("commit from ldflags should win, got %q", GitCommit)
	}
}
