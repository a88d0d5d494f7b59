package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/services"
	"github.com/renato0307/devcon/internal/theme"
)

// DefaultRefreshInterval is the delay between two status reloads
const DefaultRefreshInterval = 2 * time.Second

// StatusLoader loads a fresh status report
type StatusLoader func(ctx context.Context) (services.StatusReport, error)

type reportMsg struct {
	err    error
	report services.StatusReport
}

type refreshMsg time.Time

// WatchModel is a live view of the device status
type WatchModel struct {
	err      error
	interval time.Duration
	keys     WatchKeys
	load     StatusLoader
	loading  bool
	report   *services.StatusReport
	spinner  spinner.Model
	width    int
}

// NewWatchModel creates the model. A non-positive interval uses
// DefaultRefreshInterval.
func NewWatchModel(load StatusLoader, interval time.Duration) *WatchModel {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &WatchModel{
		interval: interval,
		keys:     DefaultWatchKeys(),
		load:     load,
		loading:  true,
		spinner:  s,
		width:    80,
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if !m.loading {
				m.loading = true
				return m, m.fetch()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case reportMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			logging.Logger.Warn("Failed to load status", "error", msg.err)
		} else {
			report := msg.report
			m.report = &report
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return refreshMsg(t) })

	case refreshMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.fetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WatchModel) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("devcon status"))
	b.WriteString("\n")

	if m.report == nil {
		if m.err != nil {
			b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)))
		} else {
			b.WriteString(fmt.Sprintf("%s Loading...", m.spinner.View()))
		}
		b.WriteString("\n")
		return b.String()
	}

	r := m.report
	fmt.Fprintf(&b, "%s %s\n\n", theme.LabelStyle.Render("indicator"), theme.RenderIndicator(r.Indicator))

	b.WriteString(theme.LabelStyle.Render("counters"))
	b.WriteString("\n")
	names := make([]string, 0, len(r.Counters))
	for name := range r.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %-20s %d\n", name, r.Counters[name])
	}
	if len(names) == 0 {
		b.WriteString(theme.MutedStyle.Render("  none"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("ota sessions"))
	b.WriteString("\n")
	for _, s := range r.Sessions {
		result := "ok"
		if s.ResultCode != 0 {
			result = fmt.Sprintf("rv=%d", s.ResultCode)
		}
		fmt.Fprintf(&b, "  %-14s %-8s %s\n", humanize.Time(s.EndedAt), result, s.Duration.Truncate(time.Millisecond))
	}
	if len(r.Sessions) == 0 {
		b.WriteString(theme.MutedStyle.Render("  none"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("trace events"))
	b.WriteString("\n")
	for _, e := range r.Events {
		fmt.Fprintf(&b, "  %-14s %s %s\n", humanize.Time(e.CreatedAt), e.Reason, theme.MutedStyle.Render(e.Message))
	}
	if len(r.Events) == 0 {
		b.WriteString(theme.MutedStyle.Render("  none"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)))
		b.WriteString("\n")
	}
	footer := m.keys.footer()
	if m.loading {
		footer = m.spinner.View() + " " + footer
	}
	b.WriteString(theme.MutedStyle.Render(footer))
	b.WriteString("\n")
	return b.String()
}

func (m *WatchModel) fetch() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		report, err := load(ctx)
		return reportMsg{err: err, report: report}
	}
}
