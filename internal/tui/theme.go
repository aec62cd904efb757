package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used across the display. Switching themes swaps
// the whole struct at once.
type Theme struct {
	Name string

	Header  lipgloss.Style
	Caption lipgloss.Style
	Digits  lipgloss.Style
	Clock   lipgloss.Style
	Dim     lipgloss.Style
	Message lipgloss.Style

	StripCurrent lipgloss.Style
	StripIdle    lipgloss.Style

	ModalBox   lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	ButtonIdle lipgloss.Style
	ButtonHot  lipgloss.Style
}

var themes = map[string]Theme{
	"default": {
		Name:    "default",
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("57")).Padding(0, 2),
		Caption: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Digits:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StripCurrent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).Padding(0, 1),
		StripIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")).Padding(0, 1),
		ModalBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).Padding(1, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Focused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		ButtonIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Padding(0, 2),
		ButtonHot:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 2),
	},
	"midnight": {
		Name:    "midnight",
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")).Background(lipgloss.Color("17")).Padding(0, 2),
		Caption: lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
		Digits:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		StripCurrent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("17")).
			Background(lipgloss.Color("51")).Padding(0, 1),
		StripIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("110")).
			Background(lipgloss.Color("234")).Padding(0, 1),
		ModalBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).Padding(1, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		Focused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		ButtonIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Background(lipgloss.Color("235")).Padding(0, 2),
		ButtonHot:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("17")).Background(lipgloss.Color("51")).Padding(0, 2),
	},
	"contrast": {
		Name:    "contrast",
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Padding(0, 2),
		Caption: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Digits:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		StripCurrent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).Padding(0, 1),
		StripIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0")).Padding(0, 1),
		ModalBox: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15")).Padding(1, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Focused:    lipgloss.NewStyle().Bold(true).Reverse(true),
		ButtonIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 2),
		ButtonHot:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Padding(0, 2),
	},
}

// themeOrder fixes the cycling order for the theme hotkey.
var themeOrder = []string{"default", "midnight", "contrast"}

func themeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

func nextThemeName(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
