package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"listselect/internal/ui/services/search"
)

// Row is everything a row renderer gets for one visible index
type Row struct {
	Index       int
	Disabled    bool
	Selected    bool
	Focused     bool
	DisplayText string
	Multiple    bool
	Query       string // committed query, for highlighting

	// OnHover is invoked when the pointer moves over the row
	OnHover func()
	// OnActivate is invoked when the row is clicked; shift reports the modifier
	OnActivate func(shift bool)
}

// RowRenderer turns a row into its visual form
type RowRenderer interface {
	RenderRow(row Row, width int) string
}

// RowRendererFunc adapts a function to RowRenderer
type RowRendererFunc func(row Row, width int) string

func (f RowRendererFunc) RenderRow(row Row, width int) string {
	return f(row, width)
}

// DefaultRowRenderer renders rows with lipgloss
type DefaultRowRenderer struct {
	styles *Styles
}

// NewDefaultRowRenderer creates the default row renderer
func NewDefaultRowRenderer(styles *Styles) *DefaultRowRenderer {
	return &DefaultRowRenderer{styles: styles}
}

// RenderRow renders a single row
func (r *DefaultRowRenderer) RenderRow(row Row, width int) string {
	var parts []string

	cursor := "  "
	if row.Focused {
		cursor = r.styles.Cursor.Render("> ")
	}
	parts = append(parts, cursor)

	parts = append(parts, r.indicator(row), " ")

	text := row.DisplayText
	switch {
	case row.Disabled:
		text = r.styles.Disabled.Render(text)
	case row.Query != "":
		text = r.highlightTokens(text, row.Query, row.Selected)
	case row.Selected:
		text = r.styles.Selected.Render(text)
	}
	parts = append(parts, text)

	line := strings.Join(parts, "")
	if row.Focused && width > 0 {
		line = r.styles.Focused.Width(width).Render(line)
	}
	return line
}

func (r *DefaultRowRenderer) indicator(row Row) string {
	var mark string
	if row.Multiple {
		mark = "[ ]"
		if row.Selected {
			mark = "[x]"
		}
	} else {
		mark = "( )"
		if row.Selected {
			mark = "(•)"
		}
	}
	if row.Disabled {
		return r.styles.Disabled.Render(mark)
	}
	if row.Selected {
		return r.styles.Selected.Render(mark)
	}
	return mark
}

// highlightTokens highlights the prefix of every token matching query
func (r *DefaultRowRenderer) highlightTokens(text, query string, selected bool) string {
	base := lipgloss.NewStyle()
	if selected {
		base = r.styles.Selected
	}

	var b strings.Builder
	for i, token := range strings.Split(text, " ") {
		if i > 0 {
			b.WriteString(base.Render(" "))
		}
		if n := search.HighlightPrefix(token, query); n > 0 {
			b.WriteString(r.styles.Highlight.Render(token[:n]))
			b.WriteString(base.Render(token[n:]))
			continue
		}
		b.WriteString(base.Render(token))
	}
	return b.String()
}
