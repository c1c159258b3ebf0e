// Package tui provides the interactive Bubble Tea dashboard for cryptosave.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/pool"
	"github.com/theirongolddev/cryptosave/internal/tui/components"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

// Journal records simulation events and lists them newest first.
type Journal interface {
	Record(ctx context.Context, e model.Event) (model.Event, error)
	Recent(ctx context.Context, limit int) ([]model.Event, error)
}

// App is the root Bubble Tea model.
type App struct {
	// Simulation
	state   pool.State
	journal Journal
	history []model.Event
	trend   []weekPoint

	// Auto-advance state
	autoAdvance bool
	interval    time.Duration
	tickSeq     int // bumps on every toggle so stale ticks are dropped

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int // selected member row
	notice    string

	// Per-tab state
	form     memberForm
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues // shared with setupForm across App copies
	needSetup bool
}

// weekPoint is the pool's total savings at the end of a simulated week.
type weekPoint struct {
	week    int
	savings int64
}

const (
	tabDashboard = iota
	tabTiers
	tabHistory
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
	historyLimit     = 100
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("config unreadable, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model. journal may be nil, in which case the
// History tab stays empty. firstRun shows the setup form before the dashboard.
func NewApp(cfg config.Config, journal Journal, firstRun bool) App {
	a := App{
		state:       pool.NewState(),
		journal:     journal,
		autoAdvance: cfg.Simulation.AutoAdvance,
		interval:    intervalFromConfig(cfg),
		form:        newMemberForm(),
		needSetup:   firstRun,
	}
	if firstRun {
		vals := newSetupValues(cfg)
		a.setupVals = &vals
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

func intervalFromConfig(cfg config.Config) time.Duration {
	return time.Duration(config.EffectiveAutoAdvanceSec(cfg.Simulation.AutoAdvanceSec)) * time.Second
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	if a.autoAdvance {
		cmds = append(cmds, advanceTickCmd(a.interval, a.tickSeq))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabDashboard && a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabDashboard && a.cursor < a.state.Pool.Len()-1 {
				a.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 && !a.state.FormOpen {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case advanceTickMsg:
		if msg.seq != a.tickSeq || !a.autoAdvance {
			return a, nil
		}
		if a.state.Pool.CanAdvance() {
			a.advanceWeek()
		}
		return a, advanceTickCmd(a.interval, a.tickSeq)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	a.notice = ""

	// Settings tab has its own keybindings (text input)
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// The add-member form owns the keyboard while open
	if a.activeTab == tabDashboard && a.state.FormOpen {
		return a.updateForm(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case tabDashboard:
		switch key {
		case "a":
			return a.toggleForm()
		case "n", " ", "space":
			if !a.state.Pool.CanAdvance() {
				a.notice = "Add a member before simulating a week"
				return a, nil
			}
			a.advanceWeek()
			return a, nil
		case "j", "down":
			if a.cursor < a.state.Pool.Len()-1 {
				a.cursor++
			}
			return a, nil
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "g":
			a.cursor = 0
			return a, nil
		case "G":
			a.cursor = max(0, a.state.Pool.Len()-1)
			return a, nil
		case "w":
			a.withdrawSelected()
			return a, nil
		}

	case tabSettings:
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Toggle auto-advance
	if key == "A" {
		return a.toggleAutoAdvance()
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		cfg := a.setupVals.apply(loadConfigOrDefault())
		if err := config.Save(cfg); err != nil {
			log.WithError(err).Warn("saving setup config")
			a.notice = "Could not save settings: " + err.Error()
		}
		theme.SetActive(cfg.Appearance.Theme)
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
		return a.applySimulationConfig(cfg)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
		return a, nil
	}

	return a, cmd
}

// applySimulationConfig adopts the auto-advance settings and restarts the
// tick loop when they change.
func (a App) applySimulationConfig(cfg config.Config) (App, tea.Cmd) {
	interval := intervalFromConfig(cfg)
	if cfg.Simulation.AutoAdvance == a.autoAdvance && interval == a.interval {
		return a, nil
	}
	a.autoAdvance = cfg.Simulation.AutoAdvance
	a.interval = interval
	a.tickSeq++
	if !a.autoAdvance {
		return a, nil
	}
	return a, advanceTickCmd(a.interval, a.tickSeq)
}

// ─── Transitions ────────────────────────────────────────────────

func (a App) toggleForm() (App, tea.Cmd) {
	if !a.state.FormOpen && !a.state.Pool.CanAdd() {
		a.notice = fmt.Sprintf("Pool is full (%d members)", config.MaxMembers)
		return a, nil
	}
	a.state = a.state.ToggleForm()
	if !a.state.FormOpen {
		return a, nil
	}
	a.form = newMemberForm()
	return a, a.form.setFocus(fieldName)
}

func (a *App) submitForm() {
	id := pool.NewMemberID()
	next, ok := a.state.Submit(id)
	a.state = next
	if !ok {
		log.WithFields(log.Fields{
			"week":   next.Pool.Week,
			"errors": next.Errors,
		}).Info("member rejected")
		return
	}

	m, _ := next.Pool.Find(id)
	a.record(pool.JoinedEvent(m))
	a.form = newMemberForm()
	a.cursor = next.Pool.Len() - 1
	log.WithFields(log.Fields{
		"member_id": m.ID,
		"week":      m.JoinedWeek,
		"tier":      m.Tier,
	}).Debug("member joined")
}

func (a *App) withdrawSelected() {
	members := a.state.Pool.Members
	if a.cursor < 0 || a.cursor >= len(members) {
		return
	}
	m := members[a.cursor]
	a.state = a.state.Withdraw(m.ID)
	a.record(pool.WithdrewEvent(m, a.state.Pool.Week))
	if a.cursor >= a.state.Pool.Len() {
		a.cursor = max(0, a.state.Pool.Len()-1)
	}
	log.WithFields(log.Fields{
		"member_id": m.ID,
		"week":      a.state.Pool.Week,
		"tier":      m.Tier,
	}).Debug("member withdrew")
}

func (a *App) advanceWeek() {
	if len(a.trend) == 0 {
		a.trend = append(a.trend, weekPoint{week: a.state.Pool.Week, savings: a.state.Pool.Totals().Savings})
	}
	a.state = a.state.AdvanceWeek()
	savings := a.state.Pool.Totals().Savings
	a.trend = append(a.trend, weekPoint{week: a.state.Pool.Week, savings: savings})
	a.record(pool.WeekAdvancedEvent(a.state.Pool))
	log.WithFields(log.Fields{
		"week":    a.state.Pool.Week,
		"savings": savings,
	}).Debug("week advanced")
}

func (a App) toggleAutoAdvance() (App, tea.Cmd) {
	a.autoAdvance = !a.autoAdvance
	a.tickSeq++

	cfg := loadConfigOrDefault()
	cfg.Simulation.AutoAdvance = a.autoAdvance
	if err := config.Save(cfg); err != nil {
		log.WithError(err).Warn("saving auto-advance setting")
	}

	if !a.autoAdvance {
		return a, nil
	}
	return a, advanceTickCmd(a.interval, a.tickSeq)
}

// record appends e to the journal and refreshes the cached history.
// Journal failures are logged and never block the transition.
func (a *App) record(e model.Event) {
	if a.journal == nil {
		return
	}
	ctx := context.Background()
	if _, err := a.journal.Record(ctx, e); err != nil {
		log.WithError(err).WithField("kind", e.Kind).Warn("journal record failed")
		return
	}
	events, err := a.journal.Recent(ctx, historyLimit)
	if err != nil {
		log.WithError(err).Warn("journal read failed")
		return
	}
	a.history = events
}

type advanceTickMsg struct{ seq int }

func advanceTickCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceTickMsg{seq: seq}
	})
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cryptosave needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d t h x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Select member"},
		}},
		{"Pool", []struct{ key, desc string }{
			{"a", "Add member"},
			{"n Space", "Simulate one week"},
			{"w", "Withdraw selected member"},
			{"A", "Toggle auto-advance"},
		}},
		{"Add Member Form", []struct{ key, desc string }{
			{"Tab", "Next field"},
			{"← → 1 2 3", "Choose tier"},
			{"Enter", "Add member"},
			{"Esc", "Cancel"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + pool summary line
	infoStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	p := a.state.Pool
	info := infoStyle.Render(" ") +
		accentStyle.Render(fmt.Sprintf("Week %d", p.Week)) +
		infoStyle.Render(fmt.Sprintf(" • %d/%d Members ", p.Len(), config.MaxMembers))

	infoRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		infoRowStyle.Render(info)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, components.StatusInfo{
		Week:        p.Week,
		Members:     p.Len(),
		MaxMembers:  config.MaxMembers,
		AutoAdvance: a.autoAdvance,
		IntervalSec: int(a.interval / time.Second),
		Notice:      a.notice,
	})

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabTiers:
		content = a.renderTiersTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
