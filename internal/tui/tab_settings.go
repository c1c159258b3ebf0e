package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/tui/components"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

const (
	settingsFieldTheme = iota
	settingsFieldAutoAdvance
	settingsFieldInterval
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldAutoAdvance:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.autoAdvance))
	case settingsFieldInterval:
		ti.Placeholder = fmt.Sprintf("seconds per week, minimum %d", config.MinAutoAdvanceSec)
		ti.SetValue(strconv.Itoa(int(a.interval / time.Second)))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(cfg.Log.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		next, cmd := a.settingsSave()
		next.settings.editing = false
		next.settings.saved = next.settings.saveErr == nil
		return next, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited value, persists it, and applies it to
// the running app. Invalid values are ignored.
func (a App) settingsSave() (App, tea.Cmd) {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if theme.Valid(val) {
			cfg.Appearance.Theme = val
			theme.SetActive(val)
		}
	case settingsFieldAutoAdvance:
		cfg.Simulation.AutoAdvance = val == "true" || val == "1" || val == "yes"
	case settingsFieldInterval:
		if sec, err := strconv.Atoi(val); err == nil && sec >= config.MinAutoAdvanceSec {
			cfg.Simulation.AutoAdvanceSec = sec
		}
	case settingsFieldLogLevel:
		if lvl, err := log.ParseLevel(val); err == nil {
			cfg.Log.Level = val
			log.SetLevel(lvl)
		}
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr != nil {
		log.WithError(a.settings.saveErr).Warn("saving settings")
	}
	return a.applySimulationConfig(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	// Auto-advance fields show live App state so they match the A toggle
	fields := []field{
		{"Theme", theme.Active.Name},
		{"Auto Advance", strconv.FormatBool(a.autoAdvance)},
		{"Week Interval", fmt.Sprintf("%ds", int(a.interval/time.Second))},
		{"Log Level", cfg.Log.Level},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			padLen := components.CardInnerWidth(cw) - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:    ") + valueStyle.Render(config.LogFile(cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Journal:     ") + valueStyle.Render("in memory, cleared on exit"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
