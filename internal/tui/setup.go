package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run setup form.
type setupValues struct {
	theme       string
	autoAdvance bool
	interval    string
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		theme:       cfg.Appearance.Theme,
		autoAdvance: cfg.Simulation.AutoAdvance,
		interval:    strconv.Itoa(config.EffectiveAutoAdvanceSec(cfg.Simulation.AutoAdvanceSec)),
	}
}

// apply copies the chosen values onto cfg.
func (v setupValues) apply(cfg config.Config) config.Config {
	if theme.Valid(v.theme) {
		cfg.Appearance.Theme = v.theme
	}
	cfg.Simulation.AutoAdvance = v.autoAdvance
	if sec, err := strconv.Atoi(strings.TrimSpace(v.interval)); err == nil {
		cfg.Simulation.AutoAdvanceSec = config.EffectiveAutoAdvanceSec(sec)
	}
	return cfg
}

func validateInterval(s string) error {
	sec, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || sec < config.MinAutoAdvanceSec {
		return fmt.Errorf("enter a whole number of seconds, at least %d", config.MinAutoAdvanceSec)
	}
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cryptosave").
				Description(fmt.Sprintf("Simulate a savings pool of up to %d members\nacross three fixed-rate tiers.\n\nA few preferences first.", config.MaxMembers)),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewConfirm().
				Title("Auto-advance weeks?").
				Description("Simulate a week on a timer while the pool has members.").
				Value(&vals.autoAdvance),
			huh.NewInput().
				Title("Seconds per simulated week").
				Value(&vals.interval).
				Validate(validateInterval),
		),
	).WithTheme(huh.ThemeCharm())
}

// ErrSetupAborted is returned by RunSetup when the user quits the form.
var ErrSetupAborted = errors.New("setup aborted")

// RunSetup runs the setup form outside the dashboard and saves the result.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cfg, ErrSetupAborted
		}
		return cfg, fmt.Errorf("running setup form: %w", err)
	}

	cfg = vals.apply(cfg)
	if err := config.Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
