package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
	Highlight   lipgloss.Style
	Prompt      lipgloss.Style
	Page        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Highlight: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		Page: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
