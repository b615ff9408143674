// Package tui provides the interactive report browser for the toggltxt application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evensen/toggltxt/internal/cli"
	"github.com/evensen/toggltxt/internal/config"
	"github.com/evensen/toggltxt/internal/entry"
	"github.com/evensen/toggltxt/internal/filter"
	"github.com/evensen/toggltxt/internal/report"
	"github.com/evensen/toggltxt/internal/toggl"
	"github.com/evensen/toggltxt/internal/tui/ui"
)

// Tab identifies one report section of the browser
type Tab int

const (
	TabDays Tab = iota
	TabWeeks
	TabMonths
	TabSummary
)

var tabNames = []string{"Days", "Weeks", "Months", "Summary"}

// sidebarWidth is the width of the period list column, prefix included.
const sidebarWidth = 24

const noEntriesMessage = "No entries in the export (or none match the filters)."

// Model is the root browser model. Each tab lists the periods of one report
// section; the viewport shows the selected period rendered with the same
// layout the printed report uses.
type Model struct {
	// Export source
	path   string
	filter *filter.Filter
	cfg    config.Config

	// Assembled report
	rep     report.Report
	loadErr error
	loading bool

	// UI state
	activeTab Tab
	selected  []int // period cursor per tab
	width     int
	height    int
	showHelp  bool
	ready     bool
	viewport  viewport.Model

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a browser model for the export at path
func New(path string, f *filter.Filter, cfg config.Config) Model {
	themeProvider := ui.NewThemeProvider(cfg.Theme)

	return Model{
		path:          path,
		filter:        f,
		cfg:           cfg,
		loading:       true,
		activeTab:     TabDays,
		selected:      make([]int, len(tabNames)),
		themeProvider: themeProvider,
		styles:        themeProvider.Styles(),
		keys:          ui.DefaultKeyMap(),
	}
}

// reportLoadedMsg is sent when the export has been read and assembled
type reportLoadedMsg struct {
	rep report.Report
	err error
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadReport()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.switchTab(TabDays)
			return m, nil

		case key.Matches(msg, m.keys.Tab2):
			m.switchTab(TabWeeks)
			return m, nil

		case key.Matches(msg, m.keys.Tab3):
			m.switchTab(TabMonths)
			return m, nil

		case key.Matches(msg, m.keys.Tab4):
			m.switchTab(TabSummary)
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ViewUp()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ViewDown()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.refreshViewport()
			return m, m.loadReport()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case reportLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.rep = msg.rep
		}
		m.clampSelection()
		m.refreshViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// loadReport creates a command that reads and assembles the export
func (m Model) loadReport() tea.Cmd {
	path, f, cfg := m.path, m.filter, m.cfg
	return func() tea.Msg {
		rep, err := buildReport(path, f, cfg)
		return reportLoadedMsg{rep: rep, err: err}
	}
}

// buildReport reads the export, applies the filter and assembles every
// report section with the configured limits.
func buildReport(path string, f *filter.Filter, cfg config.Config) (report.Report, error) {
	entries, err := toggl.ReadFile(path)
	if err != nil {
		return report.Report{}, err
	}
	entries = filter.FilterEntries(entries, f)

	return report.Build(entries, report.Limits{
		WeekTop:    cfg.WeekTop,
		MonthTop:   cfg.MonthTop,
		OverallTop: cfg.OverallTop,
	})
}

// switchTab activates a tab and rewinds the viewport to its selection
func (m *Model) switchTab(tab Tab) {
	m.activeTab = tab
	m.refreshViewport()
}

// moveSelection moves the period cursor of the active tab by delta,
// clamped to the period list.
func (m *Model) moveSelection(delta int) {
	count := m.periodCount(m.activeTab)
	if count == 0 {
		return
	}

	idx := m.selected[m.activeTab] + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= count {
		idx = count - 1
	}
	if idx == m.selected[m.activeTab] {
		return
	}

	m.selected[m.activeTab] = idx
	m.refreshViewport()
}

// clampSelection pulls every tab's cursor back inside its period list.
// A reload can shrink the report under the cursor.
func (m *Model) clampSelection() {
	for tab := range m.selected {
		count := m.periodCount(Tab(tab))
		if count == 0 {
			m.selected[tab] = 0
			continue
		}
		if m.selected[tab] >= count {
			m.selected[tab] = count - 1
		}
	}
}

// periodCount returns the number of selectable periods on a tab
func (m Model) periodCount(tab Tab) int {
	switch tab {
	case TabDays:
		return len(m.rep.Days)
	case TabWeeks:
		return len(m.rep.Weeks)
	case TabMonths:
		return len(m.rep.Months)
	case TabSummary:
		return 1
	}
	return 0
}

// periodLabel returns the sidebar line for one period of a tab
func (m Model) periodLabel(tab Tab, i int) string {
	switch tab {
	case TabDays:
		day := m.rep.Days[i]
		return fmt.Sprintf("%-10s %8s", day.Date, cli.FormatDuration(day.Total))
	case TabWeeks:
		week := m.rep.Weeks[i]
		return fmt.Sprintf("%-10s %8s", week.Key, cli.FormatDuration(week.Total))
	case TabMonths:
		month := m.rep.Months[i]
		return fmt.Sprintf("%-10s %8s", month.Key, cli.FormatDuration(month.Total))
	case TabSummary:
		return "Overall"
	}
	return ""
}

// contentSize returns the viewport dimensions for the current window,
// accounting for the app padding, tab bar, sidebar and status bar.
func (m Model) contentSize() (int, int) {
	width := m.width - sidebarWidth - 8
	if width < 20 {
		width = 20
	}
	height := m.height - 7
	if height < 5 {
		height = 5
	}
	return width, height
}

// resizeViewport creates or resizes the viewport for the current window
func (m *Model) resizeViewport() {
	width, height := m.contentSize()
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
		m.viewport.SetContent(m.reportContent())
		return
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

// refreshViewport re-renders the selected period into the viewport
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.reportContent())
	m.viewport.GotoTop()
}

// reportContent returns the text shown in the viewport
func (m Model) reportContent() string {
	if m.loading {
		return "Loading..."
	}
	if m.loadErr != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.loadErr)) +
			"\n\nPress r to retry."
	}
	return m.renderPeriod()
}

// renderPeriod renders the selected period of the active tab
func (m Model) renderPeriod() string {
	var b strings.Builder

	switch m.activeTab {
	case TabDays:
		if len(m.rep.Days) == 0 {
			return noEntriesMessage
		}
		b.WriteString(m.dayContent(m.rep.Days[m.selected[TabDays]]))
	case TabWeeks:
		if len(m.rep.Weeks) == 0 {
			return noEntriesMessage
		}
		cli.RenderWeek(&b, m.rep.Weeks[m.selected[TabWeeks]])
	case TabMonths:
		if len(m.rep.Months) == 0 {
			return noEntriesMessage
		}
		cli.RenderMonth(&b, m.rep.Months[m.selected[TabMonths]])
	case TabSummary:
		cli.RenderOverall(&b, m.rep.Overall)
	}

	return b.String()
}

// dayContent renders one day with block descriptions clipped to the
// configured width. Printed reports keep full descriptions; the browser
// pane is width-bound.
func (m Model) dayContent(day report.Day) string {
	if m.cfg.DescriptionWidth > 0 {
		blocks := make([]entry.Entry, len(day.Blocks))
		copy(blocks, day.Blocks)
		for i := range blocks {
			blocks[i].Description = cli.TruncateDescription(blocks[i].Description, m.cfg.DescriptionWidth)
		}
		day.Blocks = blocks
	}

	var b strings.Builder
	cli.RenderDay(&b, day)
	return b.String()
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderBody renders the period list next to the report viewport
func (m Model) renderBody() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPeriodList(),
		m.styles.Report.Render(m.viewport.View()),
	)
}

// renderPeriodList renders the sidebar listing the active tab's periods,
// windowed around the cursor when the list outgrows the pane.
func (m Model) renderPeriodList() string {
	count := m.periodCount(m.activeTab)
	_, height := m.contentSize()

	lines := make([]string, 0, height)
	if count == 0 {
		lines = append(lines, m.styles.PeriodEmpty.Render("(no entries)"))
	}

	start, end := listWindow(count, m.selected[m.activeTab], height)
	for i := start; i < end; i++ {
		label := m.periodLabel(m.activeTab, i)
		if i == m.selected[m.activeTab] {
			lines = append(lines, m.styles.PeriodSelected.Render("> "+label))
		} else {
			lines = append(lines, m.styles.PeriodNormal.Render("  "+label))
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return m.styles.PeriodList.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// listWindow returns the half-open range of list indices to show so that
// the selection stays visible inside height rows.
func listWindow(count, selected, height int) (int, int) {
	if height <= 0 || count <= height {
		return 0, count
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	if start+height > count {
		start = count - height
	}
	return start, start + height
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, m.styles.StatusValue.Render(m.path))
	parts = append(parts, m.renderKeyHelp("j/k", "select"))
	parts = append(parts, m.renderKeyHelp("tab/1-4", "tabs"))
	parts = append(parts, m.renderKeyHelp("pgup/pgdn", "scroll"))
	parts = append(parts, m.renderKeyHelp("r", "reload"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelpOverlay renders the keyboard shortcut overlay
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.HelpLabel.Render("Tabs:"))
	help.WriteString("\n")
	help.WriteString("  tab/shift+tab  Next/previous tab\n")
	help.WriteString("  1-4            Days, Weeks, Months, Summary\n")
	help.WriteString("\n")

	help.WriteString(m.styles.HelpLabel.Render("Browsing:"))
	help.WriteString("\n")
	help.WriteString("  j/k, arrows    Select period\n")
	help.WriteString("  pgup/pgdn      Scroll the report\n")
	help.WriteString("  g/G            Jump to top/bottom\n")
	help.WriteString("  r              Reload the export\n")
	help.WriteString("\n")

	help.WriteString(m.styles.HelpLabel.Render("General:"))
	help.WriteString("\n")
	help.WriteString("  ?              Toggle help\n")
	help.WriteString("  q              Quit\n")
	help.WriteString("\n")

	help.WriteString(m.styles.StatusHelp.Render("Theme: " + m.themeProvider.CurrentDisplayName()))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the interactive browser for the export at path
func Run(path string, f *filter.Filter, cfg config.Config) error {
	model := New(path, f, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
