package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zenigata-dev/zeni/internal/config"
	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

// setupValues backs the first-run huh form.
type setupValues struct {
	currency string
	target   string
	years    int
	theme    string
}

func newSetupForm(vals *setupValues) *huh.Form {
	defaults := config.DefaultConfig()
	vals.currency = defaults.General.Currency
	vals.target = fmt.Sprintf("%.0f", defaults.General.MonthlyIncomeTarget)
	vals.years = defaults.Forecast.DefaultYears
	vals.theme = defaults.Appearance.Theme

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display currency").
				Description("ISO code used for all amounts, e.g. JPY or USD.").
				CharLimit(3).
				Value(&vals.currency),
			huh.NewInput().
				Title("Monthly income target").
				Description("Used on the dashboard to track income against a goal.").
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("enter a number")
					}
					return nil
				}).
				Value(&vals.target),
			huh.NewSelect[int]().
				Title("Default forecast horizon").
				Options(
					huh.NewOption("5 years", 5),
					huh.NewOption("10 years", 10),
					huh.NewOption("20 years", 20),
					huh.NewOption("30 years", 30),
				).
				Value(&vals.years),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
				).
				Value(&vals.theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	if a.setupVals.currency != "" {
		cfg.General.Currency = a.setupVals.currency
		a.currency = cfg.General.Currency
	}
	if target, err := strconv.ParseFloat(a.setupVals.target, 64); err == nil {
		cfg.General.MonthlyIncomeTarget = target
	}
	if a.setupVals.years > 0 {
		cfg.Forecast.DefaultYears = a.setupVals.years
		a.years = a.setupVals.years
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}

	// Best effort; the session keeps the chosen settings either way.
	_ = config.Save(cfg)
}
