package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/converter"
	"github.com/jask/jaskfx/internal/rates"
)

const (
	pageTitle    = "💱 Real-Time Currency Converter"
	pageSubtitle = "Convert currencies with live exchange rates from around the world"
)

// App is the page: a title block hosting the converter widget.
type App struct {
	widget        *Widget
	width, height int
}

// New builds the page from configuration.
func New(ctx context.Context, cfg config.Config, provider rates.Provider, logger *log.Logger) *App {
	return &App{widget: NewWidget(ctx, provider, Options{
		Defaults: converter.Defaults{
			Amount: cfg.UI.DefaultAmount,
			From:   cfg.UI.DefaultFrom,
			To:     cfg.UI.DefaultTo,
		},
		Locale:   cfg.UI.Locale,
		ToastTTL: cfg.UI.ToastDuration(),
		Logger:   logger,
	})}
}

func (a *App) Init() tea.Cmd {
	return a.widget.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = m.Width, m.Height
	}
	var cmd tea.Cmd
	a.widget, cmd = a.widget.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		pageTitleStyle.Render(pageTitle),
		pageSubtitleStyle.Render(pageSubtitle),
	)
	page := lipgloss.JoinVertical(lipgloss.Center, header, "", a.widget.View())
	if a.width == 0 {
		return page
	}
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, page)
}

// Widget returns the hosted converter widget.
func (a *App) Widget() *Widget { return a.widget }
