package weft

import (
	"reflect"
	"strings"

	"github.com/weftui/weft/internal/debug"
)

var (
	_ View   = Text{}
	_ View   = Box{}
	_ Parent = Box{}
	_ View   = Row{}
	_ View   = Column{}
	_ View   = Grid{}
	_ View   = Rule{}
)

// AlignPtr returns a pointer to the given alignment, for the optional
// alignment fields on views.
func AlignPtr(a Align) *Align { return &a }

// StylePtr returns a pointer to the given style, for optional style
// fields like Box.Background.
func StylePtr(s Style) *Style { return &s }

// GridCell places a view at an explicit grid position. Zero spans mean 1.
type GridCell struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

// Text declares a run of styled text. It sizes to its content; wrap it in
// a Box to control placement.
type Text struct {
	Content string
	Style   Style
	Key     string
}

func (t Text) Kind() string { return "text" }
func (t Text) ViewKey() string { return t.Key }
func (t Text) CreateInstance() Instance { return newTextInstance(t) }

// Box declares a general-purpose container: flex layout over its
// children plus optional border, background, and title.
type Box struct {
	Children []View
	Key      string

	// Layout
	Width     Value
	Height    Value
	Grow      float64
	NoShrink  bool
	Direction Direction
	Justify   Justify
	Align     *Align // nil inherits the stretch default
	Gap       int
	Padding   Edges
	Margin    Edges
	Cell      *GridCell // explicit grid placement, nil to auto-place

	// Visuals
	Border         BorderStyle
	BorderStyle    Style
	BorderGradient *Gradient
	Background     *Style
	Title          string
}

func (b Box) Kind() string { return "box" }
func (b Box) ViewKey() string { return b.Key }
func (b Box) ChildViews() []View { return b.Children }
func (b Box) CreateInstance() Instance { return newContainerInstance(b) }

// Row declares a horizontal flex container.
type Row struct {
	Children []View
	Key      string

	Width   Value
	Height  Value
	Grow    float64
	Justify Justify
	Align   *Align
	Gap     int
	Padding Edges
	Cell    *GridCell
}

func (r Row) Kind() string { return "row" }
func (r Row) ViewKey() string { return r.Key }
func (r Row) ChildViews() []View { return r.Children }
func (r Row) CreateInstance() Instance { return newContainerInstance(r) }

// Column declares a vertical flex container.
type Column struct {
	Children []View
	Key      string

	Width   Value
	Height  Value
	Grow    float64
	Justify Justify
	Align   *Align
	Gap     int
	Padding Edges
	Cell    *GridCell
}

func (c Column) Kind() string { return "column" }
func (c Column) ViewKey() string { return c.Key }
func (c Column) ChildViews() []View { return c.Children }
func (c Column) CreateInstance() Instance { return newContainerInstance(c) }

// Grid declares a two-dimensional track container. Children occupy cells
// by explicit placement (Box.Cell) or in row-major auto-placement order.
type Grid struct {
	Children []View
	Key      string

	Columns      []Track
	Rows         []Track
	ColumnGap    int
	RowGap       int
	JustifyItems *Align
	AlignItems   *Align

	Width   Value
	Height  Value
	Grow    float64
	Padding Edges
	Cell    *GridCell
}

func (g Grid) Kind() string { return "grid" }
func (g Grid) ViewKey() string { return g.Key }
func (g Grid) ChildViews() []View { return g.Children }
func (g Grid) CreateInstance() Instance { return newContainerInstance(g) }

// Rule declares a horizontal line. It stretches to the width its
// container gives it.
type Rule struct {
	Style Style
	Key   string
}

func (r Rule) Kind() string { return "rule" }
func (r Rule) ViewKey() string { return r.Key }
func (r Rule) CreateInstance() Instance { return newRuleInstance(r) }

// ---- text instance ----

type textInstance struct {
	baseInstance
	content string
	style   Style
}

func newTextInstance(t Text) *textInstance {
	ti := &textInstance{
		baseInstance: newBaseInstance("text"),
		content:      t.Content,
		style:        t.Style,
	}
	ti.key = t.Key
	return ti
}

func (t *textInstance) Update(v View) {
	decl, ok := v.(Text)
	if !ok {
		debug.Log("text instance %s: update with %T", t.path, v)
		return
	}
	if decl.Content != t.content || !decl.Style.Equal(t.style) {
		t.SetDirty(true)
	}
	t.content = decl.Content
	t.style = decl.Style
	t.key = decl.Key
}

func (t *textInstance) IntrinsicSize() (width, height int) {
	lines := strings.Split(t.content, "\n")
	for _, line := range lines {
		if w := StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

func (t *textInstance) RenderNode() *Node {
	if !t.mounted() {
		return nil
	}
	n := NewTextNode(t.content, t.absRect())
	n.Props = Props{PropStyle: t.style}
	return n.WithKey(t.key)
}

// ---- container instance ----

// containerConfig is the per-frame configuration shared by box, row,
// column, and grid views.
type containerConfig struct {
	style          LayoutStyle
	border         BorderStyle
	borderStyle    Style
	borderGradient *Gradient
	background     *Style
	title          string
}

type containerInstance struct {
	baseInstance
	cfg containerConfig
}

func newContainerInstance(v View) *containerInstance {
	c := &containerInstance{baseInstance: newBaseInstance(v.Kind())}
	c.cfg = containerConfigOf(v)
	c.style = c.cfg.style
	c.key = viewKey(v)
	return c
}

func (c *containerInstance) Update(v View) {
	cfg := containerConfigOf(v)
	if !reflect.DeepEqual(cfg, c.cfg) {
		c.cfg = cfg
		c.style = cfg.style
		c.SetDirty(true)
	}
	c.key = viewKey(v)
}

func (c *containerInstance) RenderNode() *Node {
	if !c.mounted() {
		return nil
	}

	var props Props
	if c.cfg.border != BorderNone {
		props = Props{
			PropBorder:      c.cfg.border,
			PropBorderStyle: c.cfg.borderStyle,
		}
		if c.cfg.borderGradient != nil {
			props[PropBorderGradient] = *c.cfg.borderGradient
		}
		if c.cfg.title != "" {
			props[PropTitle] = c.cfg.title
		}
	}
	if c.cfg.background != nil {
		if props == nil {
			props = Props{}
		}
		props[PropBackground] = *c.cfg.background
	}

	children := make([]*Node, 0, len(c.children))
	for _, ci := range c.children {
		if n := ci.RenderNode(); n != nil {
			children = append(children, n)
		}
	}
	return NewElementNode(c.kind, c.absRect(), props, children...).WithKey(c.key)
}

// containerConfigOf maps a container view onto the shared configuration.
func containerConfigOf(v View) containerConfig {
	switch decl := v.(type) {
	case Box:
		s := DefaultLayoutStyle()
		s.Width = decl.Width
		s.Height = decl.Height
		s.FlexGrow = decl.Grow
		if decl.NoShrink {
			s.FlexShrink = 0
		}
		s.Direction = decl.Direction
		s.JustifyContent = decl.Justify
		if decl.Align != nil {
			s.AlignItems = *decl.Align
		}
		s.Gap = decl.Gap
		s.Padding = decl.Padding
		s.Margin = decl.Margin
		applyCell(&s, decl.Cell)
		return containerConfig{
			style:          s,
			border:         decl.Border,
			borderStyle:    decl.BorderStyle,
			borderGradient: decl.BorderGradient,
			background:     decl.Background,
			title:          decl.Title,
		}
	case Row:
		s := DefaultLayoutStyle()
		s.Width = decl.Width
		s.Height = decl.Height
		s.FlexGrow = decl.Grow
		s.Direction = DirectionRow
		s.JustifyContent = decl.Justify
		if decl.Align != nil {
			s.AlignItems = *decl.Align
		}
		s.Gap = decl.Gap
		s.Padding = decl.Padding
		applyCell(&s, decl.Cell)
		return containerConfig{style: s}
	case Column:
		s := DefaultLayoutStyle()
		s.Width = decl.Width
		s.Height = decl.Height
		s.FlexGrow = decl.Grow
		s.Direction = DirectionColumn
		s.JustifyContent = decl.Justify
		if decl.Align != nil {
			s.AlignItems = *decl.Align
		}
		s.Gap = decl.Gap
		s.Padding = decl.Padding
		applyCell(&s, decl.Cell)
		return containerConfig{style: s}
	case Grid:
		s := DefaultLayoutStyle()
		s.Display = DisplayGrid
		s.Width = decl.Width
		s.Height = decl.Height
		s.FlexGrow = decl.Grow
		s.Columns = decl.Columns
		s.Rows = decl.Rows
		s.ColumnGap = decl.ColumnGap
		s.RowGap = decl.RowGap
		if decl.JustifyItems != nil {
			s.JustifyItems = *decl.JustifyItems
		}
		if decl.AlignItems != nil {
			s.AlignItems = *decl.AlignItems
		}
		s.Padding = decl.Padding
		applyCell(&s, decl.Cell)
		return containerConfig{style: s}
	default:
		debug.Log("container config: unsupported view %T", v)
		return containerConfig{style: DefaultLayoutStyle()}
	}
}

func applyCell(s *LayoutStyle, cell *GridCell) {
	if cell == nil {
		return
	}
	s.GridRow = cell.Row
	s.GridColumn = cell.Column
	if cell.RowSpan > 0 {
		s.RowSpan = cell.RowSpan
	}
	if cell.ColumnSpan > 0 {
		s.ColumnSpan = cell.ColumnSpan
	}
}

// ---- rule instance ----

type ruleInstance struct {
	baseInstance
	ruleStyle Style
}

func newRuleInstance(r Rule) *ruleInstance {
	ri := &ruleInstance{
		baseInstance: newBaseInstance("rule"),
		ruleStyle:    r.Style,
	}
	ri.key = r.Key
	ri.style.Height = Fixed(1)
	return ri
}

func (r *ruleInstance) Update(v View) {
	decl, ok := v.(Rule)
	if !ok {
		debug.Log("rule instance %s: update with %T", r.path, v)
		return
	}
	if !decl.Style.Equal(r.ruleStyle) {
		r.SetDirty(true)
	}
	r.ruleStyle = decl.Style
	r.key = decl.Key
}

func (r *ruleInstance) IntrinsicSize() (width, height int) {
	return 1, 1
}

func (r *ruleInstance) RenderNode() *Node {
	if !r.mounted() {
		return nil
	}
	rect := r.absRect()
	if rect.Width <= 0 {
		return nil
	}
	line := strings.Repeat(string(BorderSingle.Chars().Top), rect.Width)
	n := NewTextNode(line, rect)
	n.Props = Props{PropStyle: r.ruleStyle}
	return n.WithKey(r.key)
}
