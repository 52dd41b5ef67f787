package weft

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	_ View       = Pre{}
	_ Measurable = (*preInstance)(nil)
)

// Pre declares a block of pre-rendered text whose escape sequences are
// stripped before drawing. Use it to place output from lipgloss (or any
// other ANSI-producing renderer) inside the layout tree: the block is
// measured with ANSI-aware width so padding and borders baked into the
// content size correctly, and the given style is applied uniformly to
// the stripped text.
type Pre struct {
	Content string
	Style   Style
	Key     string
}

func (p Pre) Kind() string { return "pre" }
func (p Pre) ViewKey() string { return p.Key }
func (p Pre) CreateInstance() Instance { return newPreInstance(p) }

// Styled renders the content through a lipgloss style and declares the
// result as a Pre block carrying the converted style.
func Styled(content string, style lipgloss.Style) Pre {
	return Pre{
		Content: style.Render(content),
		Style:   StyleFromLipgloss(style),
	}
}

type preInstance struct {
	baseInstance
	content string
	style   Style
}

func newPreInstance(p Pre) *preInstance {
	pi := &preInstance{
		baseInstance: newBaseInstance("pre"),
		content:      p.Content,
		style:        p.Style,
	}
	pi.key = p.Key
	return pi
}

func (p *preInstance) Update(v View) {
	decl, ok := v.(Pre)
	if !ok {
		return
	}
	if decl.Content != p.content || !decl.Style.Equal(p.style) {
		p.SetDirty(true)
	}
	p.content = decl.Content
	p.style = decl.Style
	p.key = decl.Key
}

func (p *preInstance) IntrinsicSize() (width, height int) {
	return MeasureANSI(p.content)
}

func (p *preInstance) Measure(c Constraints) Size {
	w, h := MeasureANSI(p.content)
	return c.Constrain(Size{Width: w, Height: h})
}

func (p *preInstance) RenderNode() *Node {
	if !p.mounted() {
		return nil
	}
	rect := p.absRect()
	lines := strings.Split(p.content, "\n")
	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = ansi.Strip(ansi.Truncate(line, rect.Width, ""))
	}
	n := NewTextNode(strings.Join(plain, "\n"), rect)
	n.Props = Props{PropStyle: p.style}
	return n.WithKey(p.key)
}

// MeasureANSI returns the cell dimensions of a pre-rendered text block,
// ignoring escape sequences.
func MeasureANSI(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// CutANSI returns the cells [start, end) of a single pre-rendered line,
// preserving escape sequences that span the cut.
func CutANSI(line string, start, end int) string {
	return ansi.Cut(line, start, end)
}

// StyleFromLipgloss converts the text attributes and colors of a lipgloss
// style. Layout properties (padding, margins, borders) are not carried
// over; bake them into the content with Render, or express them as Box
// configuration.
func StyleFromLipgloss(ls lipgloss.Style) Style {
	s := NewStyle().
		Foreground(ColorFromLipgloss(ls.GetForeground())).
		Background(ColorFromLipgloss(ls.GetBackground()))
	if ls.GetBold() {
		s = s.Bold()
	}
	if ls.GetFaint() {
		s = s.Dim()
	}
	if ls.GetItalic() {
		s = s.Italic()
	}
	if ls.GetUnderline() {
		s = s.Underline()
	}
	if ls.GetBlink() {
		s = s.Blink()
	}
	if ls.GetReverse() {
		s = s.Reverse()
	}
	if ls.GetStrikethrough() {
		s = s.Strikethrough()
	}
	return s
}

// ColorFromLipgloss converts a lipgloss terminal color. Adaptive colors
// resolve against the terminal's detected background.
func ColorFromLipgloss(c lipgloss.TerminalColor) Color {
	switch lc := c.(type) {
	case lipgloss.NoColor:
		return DefaultColor()
	case lipgloss.ANSIColor:
		return ANSIColor(uint8(lc))
	case lipgloss.Color:
		return colorFromLipglossString(string(lc))
	case lipgloss.AdaptiveColor:
		if lipgloss.HasDarkBackground() {
			return colorFromLipglossString(lc.Dark)
		}
		return colorFromLipglossString(lc.Light)
	case lipgloss.CompleteColor:
		return colorFromLipglossString(lc.TrueColor)
	case nil:
		return DefaultColor()
	}
	return DefaultColor()
}

// colorFromLipglossString parses lipgloss's string color forms: "#rrggbb"
// hex or a decimal ANSI 256 index.
func colorFromLipglossString(s string) Color {
	if s == "" {
		return DefaultColor()
	}
	if strings.HasPrefix(s, "#") {
		if c, err := HexColor(s); err == nil {
			return c
		}
		return DefaultColor()
	}
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx <= 255 {
		return ANSIColor(uint8(idx))
	}
	return DefaultColor()
}
