package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	adaptermocks "jsreduce.dev/pkg/jsreduce/internal/adapter/mocks"
	"jsreduce.dev/pkg/jsreduce/internal/domain"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

func TestOracle_Execute(t *testing.T) {
	cfg := adapter.EngineConfig{Binary: "d8", Args: []string{"--fuzzing"}}

	t.Run("success reads coverage and cleans up", func(t *testing.T) {
		engine := adaptermocks.NewMockEngineAdapter(t)

		var staged string

		engine.EXPECT().Run(mock.Anything, cfg, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ adapter.EngineConfig, script, coverage m.Path) (adapter.EngineRun, error) {
				data, err := os.ReadFile(string(script))
				require.NoError(t, err)
				assert.Equal(t, "f();", string(data))
				assert.Equal(t, filepath.Dir(string(script)), filepath.Dir(string(coverage)))

				staged = filepath.Dir(string(script))

				return adapter.EngineRun{Outcome: m.Success},
					os.WriteFile(string(coverage), []byte("b:2\na:1\n"), 0o600)
			}).Once()

		oracle := domain.NewOracle(adapter.NewLocalSourceFSAdapter(), engine, cfg)

		execution, err := oracle.Execute(context.Background(), "f();")
		require.NoError(t, err)

		assert.Equal(t, m.Success, execution.Outcome)
		assert.True(t, execution.Covered.Equal(m.NewCoverage("a:1", "b:2")))
		assert.NoDirExists(t, staged)
	})

	t.Run("missing coverage file means nothing covered", func(t *testing.T) {
		engine := adaptermocks.NewMockEngineAdapter(t)
		engine.EXPECT().Run(mock.Anything, cfg, mock.Anything, mock.Anything).
			Return(adapter.EngineRun{Outcome: m.Success}, nil).Once()

		oracle := domain.NewOracle(adapter.NewLocalSourceFSAdapter(), engine, cfg)

		execution, err := oracle.Execute(context.Background(), "f();")
		require.NoError(t, err)
		assert.Equal(t, 0, execution.Covered.Len())
	})

	t.Run("failed runs carry no coverage", func(t *testing.T) {
		engine := adaptermocks.NewMockEngineAdapter(t)
		engine.EXPECT().Run(mock.Anything, cfg, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ adapter.EngineConfig, _, coverage m.Path) (adapter.EngineRun, error) {
				require.NoError(t, os.WriteFile(string(coverage), []byte("a:1\n"), 0o600))

				return adapter.EngineRun{Outcome: m.Exception, ExitCode: 1, Stderr: "TypeError"}, nil
			}).Once()

		oracle := domain.NewOracle(adapter.NewLocalSourceFSAdapter(), engine, cfg)

		execution, err := oracle.Execute(context.Background(), "f();")
		require.NoError(t, err)

		assert.Equal(t, m.Exception, execution.Outcome)
		assert.Equal(t, 1, execution.ExitCode)
		assert.Equal(t, "TypeError", execution.Stderr)
		assert.Nil(t, execution.Covered)
	})

	t.Run("engine errors are returned", func(t *testing.T) {
		engine := adaptermocks.NewMockEngineAdapter(t)
		engine.EXPECT().Run(mock.Anything, cfg, mock.Anything, mock.Anything).
			Return(adapter.EngineRun{}, errors.New("exec: not found")).Once()

		oracle := domain.NewOracle(adapter.NewLocalSourceFSAdapter(), engine, cfg)

		_, err := oracle.Execute(context.Background(), "f();")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run engine")
	})

	t.Run("cancelled context times out without running", func(t *testing.T) {
		engine := adaptermocks.NewMockEngineAdapter(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		oracle := domain.NewOracle(adapter.NewLocalSourceFSAdapter(), engine, cfg)

		execution, err := oracle.Execute(ctx, "f();")
		require.NoError(t, err)
		assert.Equal(t, m.Timeout, execution.Outcome)
	})
}
