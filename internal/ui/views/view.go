package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Rows           []Row // visible window of rows
	ViewportOffset int
	Total          int // rows in the active catalog
	SourceTotal    int // rows in the configured item list
	SelectedCount  int
	Multiple       bool
	SearchEnabled  bool
	Filtered       bool
	Query          string // committed query
	InSearchMode   bool
	Prompt         string
	TextInput      string
	StatusMessage  string
	ShowHelp       bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender RowRenderer
}

// NewRenderer creates a new renderer. A nil row renderer selects the default.
func NewRenderer(rowRender RowRenderer) *Renderer {
	styles := NewStyles()
	if rowRender == nil {
		rowRender = NewDefaultRowRenderer(styles)
	}
	return &Renderer{
		styles:    styles,
		rowRender: rowRender,
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// HeaderHeight returns the number of lines rendered above the first row
func (r *Renderer) HeaderHeight(state ViewState) int {
	h := 2 // title line and spacer
	if state.SearchEnabled {
		h++
	}
	return h
}

// FooterHeight returns the number of lines rendered below the last row
func (r *Renderer) FooterHeight(state ViewState) int {
	h := 2 // spacer and status line
	if state.ShowHelp {
		h++
	}
	return h
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.SearchEnabled {
		content.WriteString(r.renderSearchLine(state))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	rowWidth := state.Width - 2
	if state.Total == 0 {
		placeholder := "No items"
		if state.Filtered {
			placeholder = fmt.Sprintf("No items match %q", state.Query)
		}
		content.WriteString(r.styles.Placeholder.Render(placeholder))
		content.WriteString("\n")
	}
	for _, row := range state.Rows {
		content.WriteString(r.rowRender.RenderRow(row, rowWidth))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))

	if state.ShowHelp && state.KeyMap != nil {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "listselect"
	}
	logo := r.styles.Title.Render(title)

	if !state.Filtered {
		return logo
	}

	filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.Query))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 2 - lipgloss.Width(logo) - lipgloss.Width(filterText)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + filterText
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	prompt := state.Prompt
	if prompt == "" {
		prompt = "Search: "
	}
	if state.InSearchMode {
		return r.styles.Prompt.Render(prompt) + state.TextInput
	}
	if state.Query == "" {
		return r.styles.Dim.Render(prompt + "press / to search")
	}
	return r.styles.Dim.Render(prompt + state.Query)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}

	parts := []string{}
	if state.Filtered {
		parts = append(parts, fmt.Sprintf("%d/%d items", state.Total, state.SourceTotal))
	} else {
		parts = append(parts, fmt.Sprintf("%d items", state.Total))
	}
	if state.Multiple {
		parts = append(parts, fmt.Sprintf("%d selected", state.SelectedCount))
	} else if state.SelectedCount > 0 {
		parts = append(parts, "1 selected")
	}

	status := strings.Join(parts, " | ")
	if len(state.Rows) > 0 {
		first := state.ViewportOffset + 1
		last := state.ViewportOffset + len(state.Rows)
		if first > 1 || last < state.Total {
			status += r.styles.Scroll.Render(fmt.Sprintf("  (%d-%d)", first, last))
		}
	}
	return r.styles.Status.Render(status)
}
