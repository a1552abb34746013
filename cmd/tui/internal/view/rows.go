package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

type rowsState int

const (
	rowsStatePassword rowsState = iota
	rowsStateLoading
	rowsStateBrowse
)

var columnWidths = []int{20, 12, 20, 15, 12, 18}

type RowsModel struct {
	CommonModel
	svc *ledger.Service

	state    rowsState
	password *string
	form     *huh.Form
	spinner  spinner.Model
	table    table.Model
	rows     [][]string
	err      error
}

func NewRowsModel(svc *ledger.Service) RowsModel {
	columns := make([]table.Column, len(ledger.Header))
	for i, title := range ledger.Header {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	password := new(string)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	).WithWidth(45).WithShowHelp(false)

	return RowsModel{
		svc:      svc,
		password: password,
		form:     form,
		spinner:  sp,
		table:    t,
	}
}

func (m RowsModel) Title() string { return "Recorded Transactions" }

func (m RowsModel) ShortHelp() string {
	if m.state == rowsStateBrowse {
		return "Esc: back | r: refresh"
	}

	return "Esc: back"
}

func (m RowsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRowsMsg:
		m.state = rowsStateBrowse
		m.err = msg.err
		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case rowsStatePassword:
		return m.updatePassword(msg)
	case rowsStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case rowsStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m RowsModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = rowsStateLoading

	return m, tea.Batch(m.spinner.Tick, m.loadRowsCmd())
}

func (m RowsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.state = rowsStateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadRowsCmd())
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *RowsModel) refreshTable() {
	var rows []table.Row

	for i, r := range m.rows {
		if i == 0 {
			continue
		}

		row := make(table.Row, len(ledger.Header))
		copy(row, r)
		rows = append(rows, row)
	}

	m.table.SetRows(rows)
}

func (m RowsModel) View() string {
	switch m.state {
	case rowsStatePassword:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case rowsStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Loading transactions...", m.spinner.View()),
		)

	case rowsStateBrowse:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				lipgloss.JoinVertical(lipgloss.Left,
					errorStyle.Render(FailureMessage(m.err)),
					"",
					helpStyle.Render(m.ShortHelp()),
				),
			)
		}

		if len(m.rows) <= 1 {
			return lipgloss.NewStyle().Padding(1).Render(
				lipgloss.JoinVertical(lipgloss.Left,
					"No data recorded yet.",
					"",
					helpStyle.Render(m.ShortHelp()),
				),
			)
		}

		summary := fmt.Sprintf("%d transactions | Total: %s", len(m.rows)-1, FormatTotal(ledger.Total(m.rows)))

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				m.table.View(),
				"",
				summary,
				helpStyle.Render(m.ShortHelp()),
			),
		)
	}

	return ""
}

type loadRowsMsg struct {
	rows [][]string
	err  error
}

func (m RowsModel) loadRowsCmd() tea.Cmd {
	password := *m.password

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		rows, err := m.svc.Rows(ctx, password)

		return loadRowsMsg{rows: rows, err: err}
	}
}
