package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/shopledger/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/shopledger/internal/config"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/storage"
)

type model struct {
	appName string
	svc     *ledger.Service

	currentView View

	submitView view.SubmitModel
	rowsView   view.RowsModel
}

type View int

const (
	ViewMenu   View = 0
	ViewSubmit View = 1
	ViewRows   View = 2
)

func initialModel(appName string, svc *ledger.Service) model {
	return model{
		appName:     appName,
		svc:         svc,
		currentView: ViewMenu,
		submitView:  view.NewSubmitModel(svc),
		rowsView:    view.NewRowsModel(svc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSubmit
				m.submitView = view.NewSubmitModel(m.svc)

				return m, m.submitView.Init()
			case "2":
				m.currentView = ViewRows
				m.rowsView = view.NewRowsModel(m.svc)

				return m, m.rowsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSubmit:
		var newModel tea.Model
		newModel, cmd = m.submitView.Update(msg)
		m.submitView = newModel.(view.SubmitModel)
	case ViewRows:
		var newModel tea.Model
		newModel, cmd = m.rowsView.Update(msg)
		m.rowsView = newModel.(view.RowsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Insert Transaction\n" +
				"2. Show Data\n\n" +
				"q. Quit",
		)
	case ViewSubmit:
		return m.submitView.View()
	case ViewRows:
		return m.rowsView.View()
	}

	return "Unknown View"
}

func main() {
	if err := run(); err != nil {
		slog.Error("tui failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rowStore, closeStore, err := storage.Open(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("opening %s row store: %w", cfg.Store.Driver, err)
	}
	defer closeStore()

	svc := ledger.NewService(rowStore, cfg.Form.Password)

	p := tea.NewProgram(initialModel(cfg.App.Name, svc))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
