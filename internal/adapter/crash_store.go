package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// CrashStore keeps candidates that crashed the engine, deduplicated by hash.
type CrashStore interface {
	// SaveCrash stores crash under dir and returns the path of its script.
	SaveCrash(ctx context.Context, dir m.Path, crash m.Crash) (m.Path, error)
}

// LocalCrashStore writes crash-<hash>.js next to a crash-<hash>.yaml
// describing how the engine died.
type LocalCrashStore struct {
	fs SourceFSAdapter
	mu sync.Mutex
}

// NewLocalCrashStore constructs a LocalCrashStore writing through fs.
func NewLocalCrashStore(fs SourceFSAdapter) *LocalCrashStore {
	return &LocalCrashStore{fs: fs}
}

// SaveCrash implements CrashStore.
func (s *LocalCrashStore) SaveCrash(ctx context.Context, dir m.Path, crash m.Crash) (m.Path, error) {
	if crash.Hash == "" {
		crash.Hash = fmt.Sprintf("%x", sha256.Sum256([]byte(crash.Source)))
	}

	name := "crash-" + crash.Hash
	if len(crash.Hash) > 16 {
		name = "crash-" + crash.Hash[:16]
	}

	script := s.fs.JoinPath(ctx, string(dir), name+".js")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.fs.FileInfo(ctx, script); err == nil {
		slog.Debug("Crash already stored", "path", script)
		return script, nil
	}

	if err := s.fs.MkdirAll(ctx, dir); err != nil {
		slog.Error("Failed to create crashes dir", "dir", dir, "error", err)
		return "", fmt.Errorf("failed to create crashes dir: %w", err)
	}

	meta, err := yaml.Marshal(crash)
	if err != nil {
		return "", fmt.Errorf("failed to encode crash metadata: %w", err)
	}

	if err := s.fs.WriteFile(ctx, script, []byte(crash.Source), 0o600); err != nil {
		slog.Error("Failed to write crash script", "path", script, "error", err)
		return "", fmt.Errorf("failed to write crash script: %w", err)
	}

	metaPath := s.fs.JoinPath(ctx, string(dir), name+".yaml")
	if err := s.fs.WriteFile(ctx, metaPath, meta, 0o600); err != nil {
		slog.Error("Failed to write crash metadata", "path", metaPath, "error", err)
		return "", fmt.Errorf("failed to write crash metadata: %w", err)
	}

	slog.Info("Stored engine crash", "path", script, "pass", crash.Pass, "exitCode", crash.ExitCode)

	return script, nil
}
