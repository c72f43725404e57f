package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// SimpleUI implements UI using plain lines on the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(context.Context) {}

// DisplayRunInfo shows how the run is set up.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, testcases int, threads int, mode m.Mode) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Minimizing %d testcase(s) with %d worker(s), mode %s\n", testcases, threads, mode)
}

// DisplayBaseline shows the coverage the testcase must keep.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, testcase m.Path, required m.Coverage) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s: preserving %d coverage site(s)\n", testcase, required.Len())
}

// PassStarted is silent; SimpleUI reports passes once they finish.
func (s *SimpleUI) PassStarted(context.Context, m.Path, m.PassKind, int) {}

// PassFinished prints one line per pass.
func (s *SimpleUI) PassFinished(ctx context.Context, testcase m.Path, stat m.PassStat) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s: %-9s %6d -> %6d bytes (%d executions, %d accepted)\n",
		testcase, stat.Kind, stat.SizeBefore, stat.SizeAfter, stat.Executions, stat.Accepted)
}

// DisplayReport prints the outcome for one testcase and its diff when present.
func (s *SimpleUI) DisplayReport(_ context.Context, report m.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printfLocked("%s -> %s: %d -> %d bytes (%.1f%% smaller)\n",
		report.Testcase, report.Output, report.OriginalSize, report.FinalSize, report.Reduction()*100)

	for _, crash := range report.Crashes {
		s.printfLocked("  engine crash saved to %s\n", crash)
	}

	if report.Diff != "" {
		s.printfLocked("%s\n", report.Diff)
	}
}

// DisplaySummary prints a table over all testcases.
func (s *SimpleUI) DisplaySummary(_ context.Context, reports []m.Report) {
	s.printf("\n%s", renderSummaryTable(reports))
}

// DisplayCoverage prints the sites, one per line.
func (s *SimpleUI) DisplayCoverage(_ context.Context, testcase m.Path, coverage m.Coverage) {
	s.printf("# %s: %d site(s)\n%s", testcase, coverage.Len(), coverage)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printfLocked(format, args...)
}

func (s *SimpleUI) printfLocked(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Testcase", "Original", "Final", "Reduction", "Executions", "Crashes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var original, final, executions, crashes int

	for _, report := range reports {
		table.Append([]string{
			string(report.Testcase),
			fmt.Sprintf("%d", report.OriginalSize),
			fmt.Sprintf("%d", report.FinalSize),
			fmt.Sprintf("%.1f%%", report.Reduction()*100),
			fmt.Sprintf("%d", report.Executions),
			fmt.Sprintf("%d", len(report.Crashes)),
		})

		original += report.OriginalSize
		final += report.FinalSize
		executions += report.Executions
		crashes += len(report.Crashes)
	}

	total := m.Report{OriginalSize: original, FinalSize: final}
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		fmt.Sprintf("%d", original),
		fmt.Sprintf("%d", final),
		fmt.Sprintf("%.1f%%", total.Reduction()*100),
		fmt.Sprintf("%d", executions),
		fmt.Sprintf("%d", crashes),
	})

	table.Render()

	return tableBuffer.String()
}
