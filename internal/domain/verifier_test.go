package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "jsreduce.dev/pkg/jsreduce/internal/adapter/mocks"
	"jsreduce.dev/pkg/jsreduce/internal/domain"
	domainmocks "jsreduce.dev/pkg/jsreduce/internal/domain/mocks"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
	"jsreduce.dev/pkg/jsreduce/pkg"
)

func TestVerifier_Accept(t *testing.T) {
	required := m.NewCoverage("a", "b")

	tests := []struct {
		name      string
		execution m.Execution
		want      bool
	}{
		{"superset accepted", m.Execution{Outcome: m.Success, Covered: m.NewCoverage("a", "b", "c")}, true},
		{"exact accepted", m.Execution{Outcome: m.Success, Covered: m.NewCoverage("a", "b")}, true},
		{"missing site rejected", m.Execution{Outcome: m.Success, Covered: m.NewCoverage("a")}, false},
		{"timeout rejected", m.Execution{Outcome: m.Timeout}, false},
		{"exception rejected", m.Execution{Outcome: m.Exception, Covered: m.NewCoverage("a", "b")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := domainmocks.NewMockOracle(t)
			oracle.EXPECT().Execute(mock.Anything, "x").Return(tt.execution, nil).Once()

			verifier := domain.NewVerifier(oracle, required, nil, "", nil)

			assert.Equal(t, tt.want, verifier.Accept(context.Background(), "x"))
			assert.Equal(t, 1, verifier.Executions())
		})
	}
}

func TestVerifier_CachesVerdicts(t *testing.T) {
	oracle := domainmocks.NewMockOracle(t)
	oracle.EXPECT().Execute(mock.Anything, "good").Return(m.Execution{Outcome: m.Success}, nil).Once()
	oracle.EXPECT().Execute(mock.Anything, "bad").Return(m.Execution{Outcome: m.Exception}, nil).Once()

	verifier := domain.NewVerifier(oracle, m.NewCoverage(), nil, "", nil)
	ctx := context.Background()

	for range 3 {
		assert.True(t, verifier.Accept(ctx, "good"))
		assert.False(t, verifier.Accept(ctx, "bad"))
	}

	assert.Equal(t, 2, verifier.Executions())
	assert.Equal(t, 4, verifier.CacheHits())
	assert.Equal(t, 1, verifier.Accepted())
}

func TestVerifier_OracleErrorsAreNotCached(t *testing.T) {
	oracle := domainmocks.NewMockOracle(t)
	oracle.EXPECT().Execute(mock.Anything, "x").Return(m.Execution{}, errors.New("no engine")).Once()
	oracle.EXPECT().Execute(mock.Anything, "x").Return(m.Execution{Outcome: m.Success}, nil).Once()

	verifier := domain.NewVerifier(oracle, nil, nil, "", nil)

	assert.False(t, verifier.Accept(context.Background(), "x"))
	assert.True(t, verifier.Accept(context.Background(), "x"))
	assert.Equal(t, 0, verifier.CacheHits())
}

func TestVerifier_CancelledContextRejects(t *testing.T) {
	oracle := domainmocks.NewMockOracle(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verifier := domain.NewVerifier(oracle, nil, nil, "", nil)

	assert.False(t, verifier.Accept(ctx, "x"))
	oracle.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestVerifier_CrashesAreStored(t *testing.T) {
	oracle := domainmocks.NewMockOracle(t)
	oracle.EXPECT().Execute(mock.Anything, "crashy").
		Return(m.Execution{Outcome: m.Crashed, ExitCode: 139, Stderr: "segv"}, nil).Once()

	store := adaptermocks.NewMockCrashStore(t)
	store.EXPECT().SaveCrash(mock.Anything, m.Path("crashes"), mock.MatchedBy(func(crash m.Crash) bool {
		return crash.Source == "crashy" && crash.ExitCode == 139 && crash.Pass == m.PassLines && len(crash.Hash) == 64
	})).Return(m.Path("crashes/crash-1.js"), nil).Once()

	verifier := domain.NewVerifier(oracle, nil, store, "crashes", nil)
	verifier.SetPass(m.PassLines)

	assert.False(t, verifier.Accept(context.Background(), "crashy"))
	// A cached crash is not stored twice.
	assert.False(t, verifier.Accept(context.Background(), "crashy"))
	assert.Equal(t, []m.Path{"crashes/crash-1.js"}, verifier.Crashes())
}

func TestVerifier_CrashStoreFailureIsTolerated(t *testing.T) {
	oracle := domainmocks.NewMockOracle(t)
	oracle.EXPECT().Execute(mock.Anything, "crashy").Return(m.Execution{Outcome: m.Crashed}, nil).Once()

	store := adaptermocks.NewMockCrashStore(t)
	store.EXPECT().SaveCrash(mock.Anything, mock.Anything, mock.Anything).
		Return(m.Path(""), errors.New("disk full")).Once()

	verifier := domain.NewVerifier(oracle, nil, store, "crashes", nil)

	assert.False(t, verifier.Accept(context.Background(), "crashy"))
	assert.Empty(t, verifier.Crashes())
}

func TestVerifier_RecordsTrace(t *testing.T) {
	trace, err := pkg.NewFileSpill[m.TraceEntry](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = trace.Remove() })

	oracle := domainmocks.NewMockOracle(t)
	oracle.EXPECT().Execute(mock.Anything, "ab").Return(m.Execution{Outcome: m.Success}, nil).Once()
	oracle.EXPECT().Execute(mock.Anything, "a").Return(m.Execution{Outcome: m.Timeout}, nil).Once()

	verifier := domain.NewVerifier(oracle, nil, nil, "", trace)
	verifier.SetPass(m.PassBodies)

	ctx := context.Background()
	verifier.Accept(ctx, "ab")
	verifier.SetPass(m.PassLines)
	verifier.Accept(ctx, "a")
	verifier.Accept(ctx, "a")

	var entries []m.TraceEntry

	require.NoError(t, trace.Range(func(_ uint64, entry m.TraceEntry) error {
		entries = append(entries, entry)
		return nil
	}))

	require.Len(t, entries, 3)
	assert.Equal(t, m.TraceEntry{Pass: m.PassBodies, Size: 2, Outcome: m.Success, Accepted: true}, entries[0])
	assert.Equal(t, m.TraceEntry{Pass: m.PassLines, Size: 1, Outcome: m.Timeout}, entries[1])
	assert.True(t, entries[2].Cached)
	assert.False(t, entries[2].Accepted)
}
