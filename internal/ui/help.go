package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	var help strings.Builder

	help.WriteString(r.title.Render("listselect Help"))
	help.WriteString("\n")

	r.writeSection(&help, "Navigation", []helpEntry{
		{"↑/↓, k/j", "Move focus up/down (wraps, skips disabled rows)"},
		{"Mouse over", "Focus the row under the pointer"},
		{"Wheel", "Move focus up/down"},
	})
	r.writeSection(&help, "Selection", []helpEntry{
		{"Space", "Toggle the focused row"},
		{"Click", "Toggle the clicked row"},
		{"Shift+Click", "Select or deselect the range from the last toggled row"},
		{"Esc", "Clear selection, disabled rows and focus"},
		{"Enter", "Accept the selection"},
	})
	r.writeSection(&help, "Search", []helpEntry{
		{"/", "Edit the search query (when search is enabled)"},
		{"Enter", "Filter rows whose words start with the query"},
		{"Esc", "Cancel and show every row"},
	})
	help.WriteString(r.note.Render("  Filtering always starts from the full list; indices refer to the filtered rows."))
	help.WriteString("\n")
	r.writeSection(&help, "Other", []helpEntry{
		{"?", "Show this help"},
		{"q, Ctrl+C", "Quit without a result"},
	})

	return strings.TrimRight(help.String(), "\n")
}

func (r *HelpRenderer) writeSection(b *strings.Builder, name string, entries []helpEntry) {
	width := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.keys); w > width {
			width = w
		}
	}

	b.WriteString(r.section.Render(name))
	b.WriteString("\n")
	for _, e := range entries {
		pad := strings.Repeat(" ", width-lipgloss.Width(e.keys)+2)
		b.WriteString(fmt.Sprintf("  %s%s%s\n", r.key.Render(e.keys), pad, r.desc.Render(e.desc)))
	}
	b.WriteString("\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is handed to the pager
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k/g/G and q on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	extra := map[string][]string{
		"down":   {"j"},
		"up":     {"k"},
		"top":    {"g"},
		"bottom": {"G"},
		"exit":   {"q", "Escape"},
	}
	for action, keys := range extra {
		config.Keybind[action] = append(config.Keybind[action], keys...)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}
