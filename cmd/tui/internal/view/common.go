package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var failureMessages = map[string]string{
	"missing_fields":   "Please fill in all fields.",
	"invalid_password": "Incorrect password.",
	"future_date":      "Future dates are not allowed.",
	"invalid_price":    "Price must be a number.",
	"invalid_date":     "Date is not valid.",
	"google_api_error": "Could not reach the sheet. Please try again.",
}

// FailureMessage turns a service error into a line for the user.
func FailureMessage(err error) string {
	if msg, ok := failureMessages[ledger.Code(err)]; ok {
		return msg
	}

	return err.Error()
}
