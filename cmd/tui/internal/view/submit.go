package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

type submitState int

const (
	submitStateForm submitState = iota
	submitStateSaving
	submitStateResult
)

// submitFields is shared with the form, which keeps pointers into it.
type submitFields struct {
	name     string
	price    string
	shopName string
	typ      string
	date     string
	password string
}

type SubmitModel struct {
	CommonModel
	svc *ledger.Service

	state   submitState
	fields  *submitFields
	form    *huh.Form
	spinner spinner.Model
	err     error
}

func NewSubmitModel(svc *ledger.Service) SubmitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SubmitModel{
		svc:     svc,
		spinner: s,
	}
	m.resetForm()

	return m
}

func (m SubmitModel) Title() string { return "Insert Transaction" }

func (m SubmitModel) ShortHelp() string {
	if m.state == submitStateResult {
		return "Enter: new transaction | Esc: back"
	}

	return "Esc: back"
}

func (m SubmitModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *SubmitModel) resetForm() {
	m.fields = &submitFields{date: time.Now().Format(time.DateOnly)}
	m.state = submitStateForm
	m.err = nil

	required := func(label string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s cannot be empty", label)
			}
			return nil
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.fields.name).
				Validate(required("name")),

			huh.NewInput().
				Key("price").
				Title("Price").
				Placeholder("45.50").
				Value(&m.fields.price).
				Validate(required("price")),

			huh.NewInput().
				Key("shop_name").
				Title("Shop Name").
				Value(&m.fields.shopName).
				Validate(required("shop name")),

			huh.NewInput().
				Key("type").
				Title("Type").
				Placeholder("Stationery").
				Value(&m.fields.typ).
				Validate(required("type")),

			huh.NewInput().
				Key("date").
				Title("Date").
				Description("YYYY-MM-DD or DD/MM/YYYY").
				Value(&m.fields.date).
				Validate(required("date")),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fields.password),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SubmitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case submitStateForm:
		return m.updateForm(msg)
	case submitStateSaving:
		return m.updateSaving(msg)
	case submitStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m SubmitModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = submitStateSaving

	return m, tea.Batch(m.spinner.Tick, m.submitCmd())
}

func (m SubmitModel) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(submitResultMsg); ok {
		m.state = submitStateResult
		m.err = result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m SubmitModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyEnter:
		m.resetForm()
		return m, m.form.Init()
	}

	return m, nil
}

func (m SubmitModel) View() string {
	switch m.state {
	case submitStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case submitStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Saving transaction...", m.spinner.View()),
		)

	case submitStateResult:
		line := successStyle.Render("Transaction recorded.")
		if m.err != nil {
			line = errorStyle.Render(FailureMessage(m.err))
		}

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left, line, "", helpStyle.Render(m.ShortHelp())),
		)
	}

	return ""
}

type submitResultMsg struct {
	err error
}

func (m SubmitModel) submitCmd() tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		err := m.svc.Submit(ctx, ledger.Record{
			Name:     f.name,
			ShopName: f.shopName,
			Price:    f.price,
			Type:     f.typ,
			Date:     f.date,
			Password: f.password,
		})

		return submitResultMsg{err: err}
	}
}
