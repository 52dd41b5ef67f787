package weft

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Palette is the named color set a theme is built from. All theme colors
// are defined here; widgets derive their styles from the palette instead
// of carrying ad-hoc color literals.
type Palette struct {
	Foreground Color
	Background Color
	Accent     Color
	Muted      Color
	Border     Color
	Focus      Color
	Success    Color
	Warning    Color
	Error      Color
}

// Theme is an explicit style configuration threaded through rendering.
// There is no process-wide theme: the app owns one Theme value and
// passes it to the root view function every frame.
type Theme struct {
	Name    string
	Palette Palette

	Text        Style
	Muted       Style
	Title       Style
	Border      Style
	FocusBorder Style
	Input       Style
	Placeholder Style
	Cursor      Style
	Rule        Style
}

// DefaultTheme returns the built-in theme: default terminal foreground
// and background with ANSI accent colors, so it degrades cleanly on
// 16-color terminals.
func DefaultTheme() Theme {
	p := Palette{
		Foreground: DefaultColor(),
		Background: DefaultColor(),
		Accent:     Cyan,
		Muted:      BrightBlack,
		Border:     BrightBlack,
		Focus:      Cyan,
		Success:    Green,
		Warning:    Yellow,
		Error:      Red,
	}
	return themeFromPalette("default", p)
}

// themeFromPalette derives the widget styles from a palette.
func themeFromPalette(name string, p Palette) Theme {
	return Theme{
		Name:    name,
		Palette: p,

		Text:        NewStyle().Foreground(p.Foreground),
		Muted:       NewStyle().Foreground(p.Muted),
		Title:       NewStyle().Foreground(p.Accent).Bold(),
		Border:      NewStyle().Foreground(p.Border),
		FocusBorder: NewStyle().Foreground(p.Focus),
		Input:       NewStyle().Foreground(p.Foreground),
		Placeholder: NewStyle().Foreground(p.Muted).Dim(),
		Cursor:      NewStyle().Foreground(p.Foreground).Reverse(),
		Rule:        NewStyle().Foreground(p.Border),
	}
}

// themeFile is the TOML schema for theme files.
type themeFile struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
}

// LoadTheme reads a theme from a TOML file:
//
//	name = "tokyonight"
//
//	[colors]
//	foreground = "#c0caf5"
//	accent = "#7aa2f7"
//	muted = "bright-black"
//	border = "#3b4261"
//
// Unspecified colors keep their DefaultTheme values. A missing file is
// not an error; the default theme is returned.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return theme, nil
	}
	if err != nil {
		return theme, fmt.Errorf("read theme: %w", err)
	}

	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return theme, fmt.Errorf("parse theme: %w", err)
	}

	p := theme.Palette
	for key, value := range file.Colors {
		c, err := ParseThemeColor(value)
		if err != nil {
			return theme, fmt.Errorf("theme %s: color %q: %w", path, key, err)
		}
		switch key {
		case "foreground":
			p.Foreground = c
		case "background":
			p.Background = c
		case "accent":
			p.Accent = c
		case "muted":
			p.Muted = c
		case "border":
			p.Border = c
		case "focus":
			p.Focus = c
		case "success":
			p.Success = c
		case "warning":
			p.Warning = c
		case "error":
			p.Error = c
		default:
			return theme, fmt.Errorf("theme %s: unknown color key %q", path, key)
		}
	}

	name := file.Name
	if name == "" {
		name = path
	}
	return themeFromPalette(name, p), nil
}

// namedThemeColors maps color names accepted in theme files.
var namedThemeColors = map[string]Color{
	"default":        {},
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ParseThemeColor parses a theme color value: "" or "default" for the
// terminal default, "#rrggbb" (or "#rgb") hex, an ANSI palette index
// like "208", or a named ANSI-16 color like "bright-blue".
func ParseThemeColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor(), nil
	}
	if s[0] == '#' {
		return HexColor(s)
	}
	if c, ok := namedThemeColors[s]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("ANSI index %d out of range", n)
		}
		return ANSIColor(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("unrecognized color %q", s)
}
