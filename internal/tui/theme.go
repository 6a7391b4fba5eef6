package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Header     lipgloss.Style
	Target     lipgloss.Style
	Task       lipgloss.Style
	DoneTask   lipgloss.Style
	Cursor     lipgloss.Style
	Input      lipgloss.Style
	Focus      lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Button     lipgloss.Style
	Clock      lipgloss.Style
	Expired    lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Dim        lipgloss.Style
}

func activeButton(bg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF9F0")).Background(lipgloss.Color(bg)).Bold(true).Padding(0, 1)
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Target:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A80000")).Bold(true),
		Task:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneTask:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Focus:      activeButton("#A80000"),
		ShortBreak: activeButton("#005C00"),
		LongBreak:  activeButton("#1F1FFF"),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Expired:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Target:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Task:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneTask:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Input:      lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Focus:      activeButton("#A80000"),
		ShortBreak: activeButton("#005C00"),
		LongBreak:  activeButton("#1F1FFF"),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1),
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Expired:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// kindStyle returns the highlight for an active interval button.
func kindStyle(label string) lipgloss.Style {
	switch label {
	case "Short Break":
		return CurrentTheme.ShortBreak
	case "Long Break":
		return CurrentTheme.LongBreak
	default:
		return CurrentTheme.Focus
	}
}
