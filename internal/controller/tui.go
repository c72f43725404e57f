package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

const tuiEventBuffer = 256

// TUI implements UI with a Bubble Tea progress view.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	events  chan tea.Msg
	done    chan struct{}
	summary []m.Report
	closed  bool
}

// NewTUI creates a TUI that renders to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeMinimize {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = make(chan tea.Msg, tuiEventBuffer)
	t.done = make(chan struct{})
	t.closed = false

	events, done := t.events, t.done
	model := newProgressModel(cfg.testcases, events)
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("progress view failed", "error", err)
		}

		// Keep senders unblocked until Close.
		for range events {
		}
	}()

	return nil
}

// Close stops the progress program and prints the summary table.
func (t *TUI) Close(context.Context) {
	t.mu.Lock()
	if t.events != nil && !t.closed {
		t.closed = true
		close(t.events)
	}
	done := t.done
	summary := t.summary
	t.mu.Unlock()

	if done != nil {
		<-done
	}

	if summary != nil {
		_, _ = fmt.Fprintf(t.output, "\n%s", renderSummaryTable(summary))
	}
}

// DisplayRunInfo shows how the run is set up.
func (t *TUI) DisplayRunInfo(_ context.Context, testcases int, threads int, mode m.Mode) {
	t.send(runInfoMsg{testcases: testcases, threads: threads, mode: mode})
}

// DisplayBaseline shows the coverage the testcase must keep.
func (t *TUI) DisplayBaseline(_ context.Context, testcase m.Path, required m.Coverage) {
	t.send(baselineMsg{testcase: testcase, sites: required.Len()})
}

// PassStarted marks testcase as running kind.
func (t *TUI) PassStarted(_ context.Context, testcase m.Path, kind m.PassKind, size int) {
	t.send(passStartedMsg{testcase: testcase, kind: kind, size: size})
}

// PassFinished records the size after a pass.
func (t *TUI) PassFinished(_ context.Context, testcase m.Path, stat m.PassStat) {
	t.send(passFinishedMsg{testcase: testcase, stat: stat})
}

// DisplayReport marks a testcase as done.
func (t *TUI) DisplayReport(_ context.Context, report m.Report) {
	t.send(reportMsg{report: report})
}

// DisplaySummary keeps the reports for Close, once the progress view is gone.
func (t *TUI) DisplaySummary(_ context.Context, reports []m.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.summary = reports
}

// DisplayCoverage prints the sites, one per line.
func (t *TUI) DisplayCoverage(_ context.Context, testcase m.Path, coverage m.Coverage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	header := titleStyle.Render(fmt.Sprintf("%s: %d site(s)", testcase, coverage.Len()))
	_, _ = fmt.Fprintf(t.output, "%s\n%s", header, coverage)
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.events == nil || t.closed {
		return
	}

	t.events <- msg
}

type runInfoMsg struct {
	testcases int
	threads   int
	mode      m.Mode
}

type baselineMsg struct {
	testcase m.Path
	sites    int
}

type passStartedMsg struct {
	testcase m.Path
	kind     m.PassKind
	size     int
}

type passFinishedMsg struct {
	testcase m.Path
	stat     m.PassStat
}

type reportMsg struct {
	report m.Report
}

type doneMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	queuedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type testcaseItem struct {
	path     m.Path
	status   string
	original int
	size     int
	done     bool
}

type progressModel struct {
	events   <-chan tea.Msg
	spinner  spinner.Model
	bar      progress.Model
	header   string
	items    []testcaseItem
	index    map[m.Path]int
	finished int
	width    int
	done     bool
}

func newProgressModel(testcases []m.Path, events <-chan tea.Msg) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = runningStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	items := make([]testcaseItem, 0, len(testcases))
	index := make(map[m.Path]int, len(testcases))

	for i, path := range testcases {
		items = append(items, testcaseItem{path: path, status: "queued"})
		index[path] = i
	}

	return &progressModel{
		events:  events,
		spinner: sp,
		bar:     bar,
		header:  "Minimizing",
		items:   items,
		index:   index,
		width:   80,
	}
}

func (p *progressModel) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.listenForEvent())
}

func (p *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		p.done = true
		return p, tea.Quit
	case spinner.TickMsg:
		if p.done {
			return p, nil
		}

		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)

		return p, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			p.width = msg.Width
			p.bar.Width = msg.Width - 4
		}

		return p, nil
	case progress.FrameMsg:
		bar, cmd := p.bar.Update(msg)
		p.bar = bar.(progress.Model)

		return p, cmd
	}

	if cmd, ok := p.apply(msg); ok {
		return p, tea.Batch(cmd, p.listenForEvent())
	}

	return p, nil
}

func (p *progressModel) apply(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case runInfoMsg:
		p.header = fmt.Sprintf("Minimizing %d testcase(s), %d worker(s), mode %s", msg.testcases, msg.threads, msg.mode)
	case baselineMsg:
		if item := p.item(msg.testcase); item != nil {
			item.status = fmt.Sprintf("%d sites", msg.sites)
		}
	case passStartedMsg:
		if item := p.item(msg.testcase); item != nil {
			item.status = string(msg.kind)
			item.size = msg.size

			if item.original == 0 {
				item.original = msg.size
			}
		}
	case passFinishedMsg:
		if item := p.item(msg.testcase); item != nil {
			item.size = msg.stat.SizeAfter
		}
	case reportMsg:
		item := p.item(msg.report.Testcase)
		if item == nil || item.done {
			return nil, true
		}

		item.done = true
		item.status = "done"
		item.original = msg.report.OriginalSize
		item.size = msg.report.FinalSize
		p.finished++

		return p.bar.SetPercent(float64(p.finished) / float64(len(p.items))), true
	default:
		return nil, false
	}

	return nil, true
}

func (p *progressModel) item(path m.Path) *testcaseItem {
	i, ok := p.index[path]
	if !ok {
		return nil
	}

	return &p.items[i]
}

func (p *progressModel) View() string {
	if len(p.items) == 0 {
		return ""
	}

	header := p.header
	if p.done {
		header = "done: " + header
	} else {
		header = p.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, item := range p.items {
		status := statusStyle(item).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s%s\n", status, item.path, sizeLabel(item)))
	}

	b.WriteString("\n")

	if p.done {
		b.WriteString(p.bar.ViewAs(1.0))
	} else {
		b.WriteString(p.bar.View())
	}

	b.WriteString("\n")

	return b.String()
}

func (p *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-p.events
		if !ok {
			return doneMsg{}
		}

		return msg
	}
}

func statusStyle(item testcaseItem) lipgloss.Style {
	switch {
	case item.done:
		return doneStyle
	case item.status == "queued":
		return queuedStyle
	default:
		return runningStyle
	}
}

func sizeLabel(item testcaseItem) string {
	if item.original == 0 {
		return ""
	}

	return fmt.Sprintf("  %d -> %d bytes", item.original, item.size)
}
