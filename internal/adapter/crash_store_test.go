package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

func TestLocalCrashStore_SaveCrash(t *testing.T) {
	store := NewLocalCrashStore(NewLocalSourceFSAdapter())
	dir := m.Path(filepath.Join(t.TempDir(), "crashes"))

	crash := m.Crash{Source: "boom();", Pass: m.PassLines, ExitCode: -1, Stderr: "SIGSEGV"}

	path, err := store.SaveCrash(context.Background(), dir, crash)
	if err != nil {
		t.Fatalf("SaveCrash() error = %v", err)
	}

	script, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("crash script missing: %v", err)
	}

	if string(script) != "boom();" {
		t.Fatalf("crash script = %q", script)
	}

	meta, err := os.ReadFile(strings.TrimSuffix(string(path), ".js") + ".yaml")
	if err != nil {
		t.Fatalf("crash metadata missing: %v", err)
	}

	if !strings.Contains(string(meta), "pass: lines") || strings.Contains(string(meta), "boom") {
		t.Fatalf("unexpected metadata:\n%s", meta)
	}

	again, err := store.SaveCrash(context.Background(), dir, crash)
	if err != nil {
		t.Fatalf("SaveCrash() second call error = %v", err)
	}

	if again != path {
		t.Fatalf("duplicate crash stored under %s, want %s", again, path)
	}

	entries, _ := os.ReadDir(string(dir))
	if len(entries) != 2 {
		t.Fatalf("expected one script and one metadata file, got %d entries", len(entries))
	}
}
