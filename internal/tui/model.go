package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polyint/internal/config"
	apperrors "github.com/agbru/polyint/internal/errors"
	"github.com/agbru/polyint/internal/format"
	"github.com/agbru/polyint/internal/integral"
	"github.com/agbru/polyint/internal/metrics"
	"github.com/agbru/polyint/internal/orchestration"
)

const progressBarWidth = 30

// Model is the root bubbletea model for the dashboard.
type Model struct {
	parentCtx context.Context
	ctx       context.Context
	cancel    context.CancelFunc

	calculators []integral.Calculator
	config      config.AppConfig
	version     string
	ref         *programRef

	keymap KeyMap
	help   help.Model

	width  int
	height int

	startTime  time.Time
	progresses []float64
	results    []orchestration.CalculationResult
	final      *FinalResultMsg
	runErr     error

	generation uint64
	done       bool
	exitCode   int
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, calculators []integral.Calculator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		parentCtx:   parentCtx,
		ctx:         ctx,
		cancel:      cancel,
		calculators: calculators,
		config:      cfg,
		version:     version,
		ref:         &programRef{},
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		startTime:   time.Now(),
		progresses:  make([]float64, len(calculators)),
		exitCode:    apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if msg.CalculatorIndex >= 0 && msg.CalculatorIndex < len(m.progresses) {
			m.progresses[msg.CalculatorIndex] = msg.Value
		}
		return m, nil

	case ProgressDoneMsg:
		for i := range m.progresses {
			m.progresses[i] = 1.0
		}
		return m, nil

	case ComparisonResultsMsg:
		m.results = msg.Results
		return m, nil

	case FinalResultMsg:
		final := msg
		m.final = &final
		return m, nil

	case ErrorMsg:
		m.runErr = msg.Err
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.startTime = time.Now()
		m.progresses = make([]float64, len(m.calculators))
		m.results = nil
		m.final = nil
		m.runErr = nil
		m.done = false
		m.exitCode = apperrors.ExitSuccess

		return m, tea.Batch(
			tickCmd(),
			startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := styles.header.Render(fmt.Sprintf("polyint %s — ∫ f(x) dx over [%d, %d]",
		m.version, m.config.XStart, m.config.XEnd))

	sections := []string{
		header,
		styles.panel.Render(m.viewProgress()),
	}
	if len(m.results) > 0 {
		sections = append(sections, styles.panel.Render(m.viewResults()))
	}
	if m.final != nil || m.runErr != nil {
		sections = append(sections, styles.panel.Render(m.viewFinal()))
	}
	snap := metrics.Snapshot()
	sections = append(sections, styles.footer.Render(fmt.Sprintf("%s  heap %s · %d GCs",
		m.help.View(m.keymap), format.FormatBytes(snap.HeapInUse), snap.GCCycles)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewProgress renders one progress bar per backend plus elapsed time.
func (m Model) viewProgress() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Backends"))
	b.WriteString("\n")
	for i, c := range m.calculators {
		value := m.progresses[i]
		b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n",
			styles.backend.Render(padRight(c.Name(), 36)),
			renderBar(value, progressBarWidth),
			value*100))
	}
	elapsed := time.Since(m.startTime).Round(time.Millisecond)
	if m.done {
		b.WriteString(styles.muted.Render(fmt.Sprintf("Finished in %s", elapsed)))
	} else {
		b.WriteString(styles.muted.Render(fmt.Sprintf("Elapsed %s", elapsed)))
	}
	return b.String()
}

// viewResults renders the comparison summary.
func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Comparison"))
	b.WriteString("\n")
	for _, res := range m.results {
		name := styles.backend.Render(padRight(res.Name, 36))
		if res.Err != nil {
			b.WriteString(fmt.Sprintf("%s %s\n", name,
				styles.failure.Render(fmt.Sprintf("failure: %v", res.Err))))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			name,
			styles.value.Render(padRight(res.Result.String(), 16)),
			styles.muted.Render(format.FormatExecutionDuration(res.Duration)),
			styles.success.Render("✓")))
	}
	return b.String()
}

// viewFinal renders the reference result or the fatal error.
func (m Model) viewFinal() string {
	if m.runErr != nil {
		return styles.failure.Render(fmt.Sprintf("Error: %v", m.runErr))
	}
	f := m.final
	line := fmt.Sprintf("∫ = %s  (%s, %s)",
		styles.success.Render(f.Result.Result.String()),
		f.Result.Name,
		format.FormatExecutionDuration(f.Result.Duration))
	if f.Result.Result.Exact {
		return line + "\n" + styles.muted.Render("Result is exact.")
	}
	return line + "\n" + styles.muted.Render(fmt.Sprintf("Tolerance ±%g.", f.Result.Result.Tolerance))
}

// renderBar draws a fixed-width progress bar.
func renderBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	return styles.barFill.Render(strings.Repeat("█", filled)) +
		styles.barEmpty.Render(strings.Repeat("░", width-filled))
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, calculators []integral.Calculator, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, calculators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd returns a tea.Cmd that launches the orchestration.
func startCalculationCmd(ref *programRef, ctx context.Context, calculators []integral.Calculator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteCalculations(ctx, calculators, cfg.ToRequest(), cfg.ToOptions(), progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			Req:     cfg.ToRequest(),
			Verbose: cfg.Verbose,
			Details: cfg.Details,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)

		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
