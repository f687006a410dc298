package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	Focused     lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Focused:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
