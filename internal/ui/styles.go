// Package ui renders task lists for the terminal and drives the
// interactive review screen.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is the color palette for list and review output. Odd and even
// task numbers alternate hues so adjacent tasks read apart at a
// glance; subtask colors are dimmed variants of the parent hue.
type Theme struct {
	TaskOdd     lipgloss.Color
	TaskEven    lipgloss.Color
	SubtaskOdd  lipgloss.Color
	SubtaskEven lipgloss.Color

	Title  lipgloss.Color
	Notice lipgloss.Color
	Help   lipgloss.Color

	Success lipgloss.Color
	Danger  lipgloss.Color
	Accent  lipgloss.Color
}

// DefaultTheme is the built-in color scheme, picked for 256-color
// terminals with a dark background.
var DefaultTheme = Theme{
	TaskOdd:     lipgloss.Color("75"),  // sky blue
	TaskEven:    lipgloss.Color("179"), // desert tan
	SubtaskOdd:  lipgloss.Color("67"),
	SubtaskEven: lipgloss.Color("137"),

	Title:  lipgloss.Color("255"),
	Notice: lipgloss.Color("220"), // amber
	Help:   lipgloss.Color("241"),

	Success: lipgloss.Color("114"), // green
	Danger:  lipgloss.Color("196"), // red
	Accent:  lipgloss.Color("141"), // light purple
}

// Styles holds prebuilt lipgloss styles for one output target.
type Styles struct {
	TaskOdd     lipgloss.Style
	TaskEven    lipgloss.Style
	SubtaskOdd  lipgloss.Style
	SubtaskEven lipgloss.Style

	Title  lipgloss.Style
	Notice lipgloss.Style
	Help   lipgloss.Style
	Cursor lipgloss.Style

	Success lipgloss.Style
	Danger  lipgloss.Style
	Accent  lipgloss.Style
}

// NewStyles builds stdout styles for the given color mode: "always"
// forces 256-color output, "never" strips all styling, anything else
// lets lipgloss detect what the terminal supports.
func NewStyles(mode string) Styles {
	var r *lipgloss.Renderer
	switch mode {
	case "always":
		// SetColorProfile is needed on top of WithProfile because the
		// renderer re-detects from the environment otherwise.
		r = lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256))
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r = lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.Ascii))
		r.SetColorProfile(termenv.Ascii)
	default:
		r = lipgloss.NewRenderer(os.Stdout)
	}
	return NewStylesFor(r, DefaultTheme)
}

// NewStylesFor builds styles against an explicit renderer and theme.
func NewStylesFor(r *lipgloss.Renderer, theme Theme) Styles {
	return Styles{
		TaskOdd:     r.NewStyle().Foreground(theme.TaskOdd),
		TaskEven:    r.NewStyle().Foreground(theme.TaskEven),
		SubtaskOdd:  r.NewStyle().Foreground(theme.SubtaskOdd),
		SubtaskEven: r.NewStyle().Foreground(theme.SubtaskEven),

		Title:  r.NewStyle().Foreground(theme.Title).Bold(true),
		Notice: r.NewStyle().Foreground(theme.Notice),
		Help:   r.NewStyle().Foreground(theme.Help),
		Cursor: r.NewStyle().Foreground(theme.Notice).Bold(true),

		Success: r.NewStyle().Foreground(theme.Success),
		Danger:  r.NewStyle().Foreground(theme.Danger),
		Accent:  r.NewStyle().Foreground(theme.Accent),
	}
}

// Task returns the line style for a 1-based task number.
func (s Styles) Task(number int) lipgloss.Style {
	if number%2 == 1 {
		return s.TaskOdd
	}
	return s.TaskEven
}

// Subtask returns the line style for a subtask under the given task
// number.
func (s Styles) Subtask(number int) lipgloss.Style {
	if number%2 == 1 {
		return s.SubtaskOdd
	}
	return s.SubtaskEven
}
