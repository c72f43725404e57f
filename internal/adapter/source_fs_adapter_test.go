package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.js"), "print(1);\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.js"), "print(2);\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), false, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.js")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "main.js")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		child := filepath.Join(root, "nested", "child.js")
		mustMkdir(t, filepath.Dir(child))
		writeTestFile(t, child, "print(2);\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), true, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), true, func(string, os.FileInfo, error) error {
			t.Fatalf("callback must not run")
			return nil
		})
		if err == nil {
			t.Fatalf("Walk() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	path := adapter.JoinPath(ctx, t.TempDir(), "out.js")
	if err := adapter.WriteFile(ctx, path, []byte("f();\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(data) != "f();\n" {
		t.Fatalf("ReadFile() = %q, want %q", data, "f();\n")
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "hash.js")
	contents := []byte("var var_1_ = 1;\n")
	writeTestBytes(t, path, contents)

	got, err := adapter.HashFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	want := fmt.Sprintf("%x", sha256.Sum256(contents))
	if got != want {
		t.Fatalf("HashFile() = %s, want %s", got, want)
	}

	if _, err := adapter.HashFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.js"))); err == nil {
		t.Fatalf("HashFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	info, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("FileInfo() expected directory")
	}

	if _, err := adapter.FileInfo(context.Background(), m.Path(filepath.Join(root, "nope"))); !os.IsNotExist(err) {
		t.Fatalf("FileInfo() expected not-exist error, got %v", err)
	}
}

func TestLocalSourceFSAdapter_TempDirLifecycle(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	tmpDir, err := adapter.CreateTempDir(ctx, "jsreduce-test-*")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}

	nested := adapter.JoinPath(ctx, string(tmpDir), "a", "b")
	if err := adapter.MkdirAll(ctx, nested); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := adapter.RemoveAll(ctx, tmpDir); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(tmpDir)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() left %s behind", tmpDir)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()

	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("failed to mkdir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if filepath.Clean(p) == filepath.Clean(target) {
			return true
		}
	}

	return false
}
