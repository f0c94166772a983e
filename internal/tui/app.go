// Package tui provides the interactive Bubble Tea dashboard for zeni.
package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/zenigata-dev/zeni/internal/config"
	"github.com/zenigata-dev/zeni/internal/dashboard"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
	"github.com/zenigata-dev/zeni/internal/store"
	"github.com/zenigata-dev/zeni/internal/tui/components"
	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

// DashboardData is everything the tabs render, loaded in one pass.
type DashboardData struct {
	Holdings  []model.Holding
	KPI       model.KPIData
	History   []model.MonthlyState // oldest first
	Plans     []model.InvestmentPlan
	Snapshots []model.DailySnapshot // last 30 days, date-ascending
	Direction metrics.Direction

	SnapshotWarn error // non-fatal: today's snapshot could not be written
}

// DataLoadedMsg is sent when the ledger load finishes.
type DataLoadedMsg struct {
	Data DashboardData
}

// LoadErrMsg is sent when the ledger load fails outright.
type LoadErrMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	dataDir  string
	currency string
	years    int

	data   DashboardData
	loaded bool
	err    error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
)

// NewApp creates a new TUI app model.
func NewApp(dataDir string) App {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if dataDir == "" {
		dataDir = config.DataDir(cfg)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dataDir:   dataDir,
		currency:  cfg.General.Currency,
		years:     cfg.Forecast.DefaultYears,
		needSetup: !config.Exists(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dataDir),
		a.spinner.Tick,
	)
}

// loadDataCmd loads the full dashboard dataset in one store session.
func loadDataCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(filepath.Join(dataDir, "zeni.db"))
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		defer st.Close()

		var d DashboardData

		now := time.Now()
		d.KPI, err = dashboard.Refresh(st, now, func(e error) { d.SnapshotWarn = e })
		if err != nil {
			return LoadErrMsg{Err: err}
		}

		if d.Holdings, err = st.AllHoldings(); err != nil {
			return LoadErrMsg{Err: err}
		}
		if d.History, err = st.AllMonthlyStates(); err != nil {
			return LoadErrMsg{Err: err}
		}
		if d.Plans, err = st.AllPlans(); err != nil {
			return LoadErrMsg{Err: err}
		}
		start := now.AddDate(0, 0, -30)
		if d.Snapshots, err = st.SnapshotsInRange(
			start.Format("2006-01-02"), now.Format("2006-01-02")); err != nil {
			return LoadErrMsg{Err: err}
		}

		window := d.History
		if len(window) > 6 {
			window = window[len(window)-6:]
		}
		d.Direction = metrics.ClassifyDirection(window)

		return DataLoadedMsg{Data: d}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dataDir), a.spinner.Tick)
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.data = msg.Data
		a.loaded = true
		a.err = nil

		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case LoadErrMsg:
		a.err = msg.Err
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(t.Orange).
			Render("\n  Terminal too narrow. Resize to at least 70 columns.\n")
	}

	if !a.loaded {
		return "\n  " + a.spinner.View() +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Loading ledger...") + "\n"
	}

	if a.err != nil {
		return lipgloss.NewStyle().Foreground(t.Red).
			Render("\n  Could not load ledger: "+a.err.Error()) + "\n\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("  [q]uit") + "\n"
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.renderHelp()
	}

	width := a.width
	if width > maxContentWidth {
		width = maxContentWidth
	}
	if width == 0 {
		width = 80
	}

	var body string
	switch a.activeTab {
	case 0:
		body = a.renderOverview(width)
	case 1:
		body = a.renderAssets(width)
	case 2:
		body = a.renderTrajectory(width)
	}

	snapDate := ""
	if n := len(a.data.Snapshots); n > 0 {
		snapDate = a.data.Snapshots[n-1].Date
	}

	header := components.RenderTabBar(a.activeTab)
	status := components.RenderStatusBar(width, snapDate)

	return "\n" + header + "\n\n" + body + "\n" + status
}

func (a App) renderHelp() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.TextPrimary)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ k, d string }{
		{"o / a / t", "switch tabs"},
		{"tab, h/l", "cycle tabs"},
		{"r", "reload the ledger"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	s := "\n" + title.Render("  Keys") + "\n\n"
	for _, l := range lines {
		s += "  " + key.Render(padRight(l.k, 12)) + desc.Render(l.d) + "\n"
	}
	s += "\n" + desc.Render("  Press any key to dismiss.") + "\n"
	return s
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
