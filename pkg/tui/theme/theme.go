// Package theme holds the Lip Gloss styles of the study UI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/uponom/FlashcardCX/pkg/settings"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Name   string
	Header HeaderTheme
	Card   CardTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the title row and the tag filter.
type HeaderTheme struct {
	Title lipgloss.Style
	Tags  lipgloss.Style
}

// CardTheme styles the study card and its progress bar.
type CardTheme struct {
	Frame       lipgloss.Style
	Revealed    lipgloss.Style
	Word        lipgloss.Style
	Translation lipgloss.Style
	Empty       lipgloss.Style
	Know        lipgloss.Style
	DontKnow    lipgloss.Style
	Stats       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help lines.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Key     lipgloss.Style
}

// ModalTheme styles the centered confirmation dialogs.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// For returns the theme matching a settings theme name; unknown names get
// Light.
func For(name string) Theme {
	if name == settings.ThemeDark {
		return Dark()
	}
	return Light()
}

// Light is the default theme.
func Light() Theme {
	return build(settings.ThemeLight, newPalette(paletteHex{
		accent:     "#5f5fd7",
		text:       "#262626",
		background: "#ffffff",
		know:       "#00af00",
		dont:       "#d70000",
		warning:    "#d75f00",
	}))
}

// Dark suits dark terminal backgrounds.
func Dark() Theme {
	return build(settings.ThemeDark, newPalette(paletteHex{
		accent:     "#ff87d7",
		text:       "#d0d0d0",
		background: "#1c1c1c",
		know:       "#5fd787",
		dont:       "#ff5f5f",
		warning:    "#ffaf00",
	}))
}

type paletteHex struct {
	accent, text, background, know, dont, warning string
}

type palette struct {
	accent, text, muted, know, dont, warning color.Color
}

// newPalette parses the theme colors; muted text sits between the text and
// the background.
func newPalette(h paletteHex) palette {
	text := colorful.MustParseHex(h.text)
	return palette{
		accent:  colorful.MustParseHex(h.accent),
		text:    text,
		muted:   text.BlendLab(colorful.MustParseHex(h.background), 0.45).Clamped(),
		know:    colorful.MustParseHex(h.know),
		dont:    colorful.MustParseHex(h.dont),
		warning: colorful.MustParseHex(h.warning),
	}
}

func build(name string, p palette) Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(1, 4).
		Align(lipgloss.Center)

	return Theme{
		Name: name,
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			Tags:  lipgloss.NewStyle().Foreground(p.muted),
		},
		Card: CardTheme{
			Frame:       frame,
			Revealed:    frame.BorderStyle(lipgloss.DoubleBorder()),
			Word:        lipgloss.NewStyle().Bold(true).Foreground(p.text),
			Translation: lipgloss.NewStyle().Italic(true).Foreground(p.text),
			Empty:       lipgloss.NewStyle().Foreground(p.muted),
			Know:        lipgloss.NewStyle().Foreground(p.know),
			DontKnow:    lipgloss.NewStyle().Foreground(p.dont),
			Stats:       lipgloss.NewStyle().Foreground(p.muted),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(p.muted),
			Status:  lipgloss.NewStyle().Foreground(p.muted),
			Warning: lipgloss.NewStyle().Bold(true).Foreground(p.warning),
			Key:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.warning).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
