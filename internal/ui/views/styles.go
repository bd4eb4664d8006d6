package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Main        lipgloss.Style
	SearchBar   lipgloss.Style
	SearchIcon  lipgloss.Style
	ShortcutKey lipgloss.Style
	Shortcut    lipgloss.Style
	Cancel      lipgloss.Style
	Menu        lipgloss.Style
	MenuItem    lipgloss.Style
	MenuItemOff lipgloss.Style
	MenuCursor  lipgloss.Style
	SwitchOn    lipgloss.Style
	SwitchOff   lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabCount    lipgloss.Style
	Settings    lipgloss.Style
	Spinner     lipgloss.Style
	Glyph       lipgloss.Style
	Avatar      lipgloss.Style
	Title       lipgloss.Style
	Badge       lipgloss.Style
	Subtitle    lipgloss.Style
	Copied      lipgloss.Style
	CopyHint    lipgloss.Style
	SelectionBg lipgloss.Style
	Skeleton    lipgloss.Style
	NoResults   lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
	Dim         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchIcon:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ShortcutKey: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		Shortcut:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cancel:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		MenuItem:    lipgloss.NewStyle(),
		MenuItemOff: lipgloss.NewStyle().Faint(true),
		MenuCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SwitchOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SwitchOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabCount:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Settings:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Glyph:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(3),
		Avatar:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Width(3),
		Title:       lipgloss.NewStyle().Bold(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Copied:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		CopyHint:    lipgloss.NewStyle().Faint(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Skeleton:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		NoResults:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Dim: lipgloss.NewStyle().Faint(true),
	}
}

// glyphs maps symbolic icon names to terminal glyphs
var glyphs = map[string]string{
	"folder":     "▣",
	"image":      "▨",
	"file-image": "▨",
	"file-video": "▶",
	"file-audio": "♪",
	"file":       "▤",
	"file-lines": "▤",
	"comment":    "✉",
	"list":       "☰",
	"user":       "☺",
}

// GetGlyph returns the glyph for an icon name
func GetGlyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "▪"
}
