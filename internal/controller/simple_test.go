package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

func TestSimpleUI_Progress(t *testing.T) {
	ctx := context.Background()
	ui, out := newTestSimpleUI()

	require.NoError(t, ui.Start(ctx, WithMinimizeMode()))
	ui.DisplayRunInfo(ctx, 2, 4, m.ModeBoth)
	ui.DisplayBaseline(ctx, "a.js", m.NewCoverage("f:1", "f:2"))
	ui.PassStarted(ctx, "a.js", m.PassBodies, 120)
	ui.PassFinished(ctx, "a.js", m.PassStat{
		Kind: m.PassBodies, SizeBefore: 120, SizeAfter: 60, Executions: 7, Accepted: 2, Duration: time.Second,
	})
	ui.Close(ctx)

	got := out.String()
	assert.Contains(t, got, "Minimizing 2 testcase(s) with 4 worker(s), mode both")
	assert.Contains(t, got, "a.js: preserving 2 coverage site(s)")
	assert.Contains(t, got, "bodies")
	assert.Contains(t, got, "120 ->     60 bytes (7 executions, 2 accepted)")
}

func TestSimpleUI_CancelledContextIsQuiet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui, out := newTestSimpleUI()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	ui.DisplayRunInfo(ctx, 1, 1, m.ModeFast)
	ui.PassFinished(ctx, "a.js", m.PassStat{Kind: m.PassLines})

	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayReport(context.Background(), m.Report{
		Testcase:     "in/a.js",
		Output:       "out/a.js",
		OriginalSize: 200,
		FinalSize:    50,
		Crashes:      []m.Path{"crashes/crash-0123.js"},
		Diff:         "--- in/a.js\n+++ out/a.js\n",
	})

	got := out.String()
	assert.Contains(t, got, "in/a.js -> out/a.js: 200 -> 50 bytes (75.0% smaller)")
	assert.Contains(t, got, "engine crash saved to crashes/crash-0123.js")
	assert.Contains(t, got, "+++ out/a.js")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplaySummary(context.Background(), []m.Report{
		{Testcase: "a.js", OriginalSize: 100, FinalSize: 25, Executions: 10},
		{Testcase: "b.js", OriginalSize: 100, FinalSize: 75, Executions: 5, Crashes: []m.Path{"c.js"}},
	})

	got := out.String()
	assert.Contains(t, got, "TESTCASE")
	assert.Contains(t, got, "a.js")
	assert.Contains(t, got, "75.0%")
	assert.Contains(t, got, "25.0%")
	assert.Contains(t, got, "TOTAL 2")
	assert.Contains(t, got, "50.0%")
}

func TestSimpleUI_DisplayCoverage(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayCoverage(context.Background(), "a.js", m.NewCoverage("b:2", "a:1"))

	assert.Equal(t, "# a.js: 2 site(s)\na:1\nb:2\n", out.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
