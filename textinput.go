package weft

import (
	"github.com/weftui/weft/internal/debug"
)

var (
	_ View       = TextInput{}
	_ Keyed      = TextInput{}
	_ Instance   = (*textInputInstance)(nil)
	_ Focusable  = (*textInputInstance)(nil)
	_ TextEditor = (*textInputInstance)(nil)
)

// TextEditor is the programmatic surface of a mounted TextInput. Look the
// instance up with App.InstanceByKey and assert to this interface to read
// or replace the content, for example to clear the field after a submit.
type TextEditor interface {
	Value() string
	SetValue(s string)
}

// TextInput declares a single-line editable text field. The declaration
// carries configuration only; the edit state (content, cursor position,
// horizontal scroll) lives on the instance and survives re-declaration,
// so rebuilding the view tree every frame never loses what the user typed.
type TextInput struct {
	// Placeholder is shown dimmed while the field is empty and unfocused.
	Placeholder string

	// Style is applied to the typed text.
	Style Style

	// PlaceholderStyle overrides the default dim placeholder rendering.
	PlaceholderStyle *Style

	// CursorStyle overrides the default reverse-video cursor cell.
	CursorStyle *Style

	// Width fixes the field width. The zero value sizes from content.
	Width Value

	// Grow is the flex-grow factor within the parent.
	Grow float64

	// OnChange fires after every edit with the new content.
	OnChange func(string)

	// OnSubmit fires when Enter is pressed.
	OnSubmit func(string)

	Key string
}

func (t TextInput) Kind() string { return "textinput" }

func (t TextInput) ViewKey() string { return t.Key }

func (t TextInput) CreateInstance() Instance {
	inst := &textInputInstance{baseInstance: newBaseInstance("textinput")}
	inst.applyConfig(t)
	return inst
}

// textInputInstance holds the edit state for one TextInput position.
// Content is kept as a rune slice so cursor arithmetic works on
// characters rather than bytes.
type textInputInstance struct {
	baseInstance

	placeholder      string
	textStyle        Style
	placeholderStyle Style
	cursorStyle      Style
	onChange         func(string)
	onSubmit         func(string)

	content []rune
	cursor  int // rune index of the insertion point
	offset  int // rune index of the first visible rune
	focused bool
}

func (t *textInputInstance) applyConfig(v TextInput) {
	t.placeholder = v.Placeholder
	t.textStyle = v.Style
	if v.PlaceholderStyle != nil {
		t.placeholderStyle = *v.PlaceholderStyle
	} else {
		t.placeholderStyle = NewStyle().Dim()
	}
	if v.CursorStyle != nil {
		t.cursorStyle = *v.CursorStyle
	} else {
		t.cursorStyle = v.Style.Reverse()
	}
	t.onChange = v.OnChange
	t.onSubmit = v.OnSubmit
	t.key = v.Key

	style := DefaultLayoutStyle()
	style.Width = v.Width
	style.Height = Fixed(1)
	style.FlexGrow = v.Grow
	t.style = style
}

func (t *textInputInstance) Update(v View) {
	decl, ok := v.(TextInput)
	if !ok {
		debug.Log("textinput %s: update with %T declaration", t.Path(), v)
		return
	}
	prev := t.snapshotConfig()
	t.applyConfig(decl)
	if t.snapshotConfig() != prev {
		t.SetDirty(true)
	}
}

// snapshotConfig captures the comparable configuration. Callbacks are
// excluded: swapping a handler never changes what is on screen.
func (t *textInputInstance) snapshotConfig() textInputConfig {
	return textInputConfig{
		placeholder:      t.placeholder,
		textStyle:        t.textStyle,
		placeholderStyle: t.placeholderStyle,
		cursorStyle:      t.cursorStyle,
		width:            t.style.Width,
		grow:             t.style.FlexGrow,
	}
}

type textInputConfig struct {
	placeholder      string
	textStyle        Style
	placeholderStyle Style
	cursorStyle      Style
	width            Value
	grow             float64
}

// Value returns the current content.
func (t *textInputInstance) Value() string { return string(t.content) }

// SetValue replaces the content and clamps the cursor.
func (t *textInputInstance) SetValue(s string) {
	t.content = []rune(s)
	t.cursor = t.clampCursor(t.cursor)
	t.SetDirty(true)
}

// CursorPos returns the rune index of the insertion point.
func (t *textInputInstance) CursorPos() int { return t.cursor }

func (t *textInputInstance) IsFocusable() bool { return true }

func (t *textInputInstance) Focus() {
	t.focused = true
	t.SetDirty(true)
}

func (t *textInputInstance) Blur() {
	t.focused = false
	t.SetDirty(true)
}

// HandleKey edits the content in place. Returns true when the key was
// consumed.
func (t *textInputInstance) HandleKey(ke KeyEvent) bool {
	switch ke.Key {
	case KeyRune:
		t.insertRune(ke.Rune)
	case KeyBackspace:
		t.backspace()
	case KeyDelete:
		t.deleteForward()
	case KeyLeft:
		t.moveCursor(t.cursor - 1)
	case KeyRight:
		t.moveCursor(t.cursor + 1)
	case KeyHome, KeyCtrlA:
		t.moveCursor(0)
	case KeyEnd, KeyCtrlE:
		t.moveCursor(len(t.content))
	case KeyCtrlU:
		t.killToStart()
	case KeyCtrlK:
		t.killToEnd()
	case KeyEnter:
		if t.onSubmit != nil {
			t.onSubmit(string(t.content))
		}
	default:
		return false
	}
	t.SetDirty(true)
	return true
}

// HandlePaste inserts pasted text at the cursor, dropping control
// characters and newlines.
func (t *textInputInstance) HandlePaste(text string) bool {
	inserted := false
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r < 0x20 {
			continue
		}
		t.insertRune(r)
		inserted = true
	}
	if inserted {
		t.SetDirty(true)
	}
	return inserted
}

func (t *textInputInstance) insertRune(r rune) {
	if r == 0 {
		return
	}
	pos := t.clampCursor(t.cursor)
	t.content = append(t.content[:pos], append([]rune{r}, t.content[pos:]...)...)
	t.cursor = pos + 1
	t.changed()
}

func (t *textInputInstance) backspace() {
	pos := t.clampCursor(t.cursor)
	if pos == 0 {
		return
	}
	t.content = append(t.content[:pos-1], t.content[pos:]...)
	t.cursor = pos - 1
	t.changed()
}

func (t *textInputInstance) deleteForward() {
	pos := t.clampCursor(t.cursor)
	if pos >= len(t.content) {
		return
	}
	t.content = append(t.content[:pos], t.content[pos+1:]...)
	t.changed()
}

func (t *textInputInstance) killToStart() {
	pos := t.clampCursor(t.cursor)
	if pos == 0 {
		return
	}
	t.content = append([]rune{}, t.content[pos:]...)
	t.cursor = 0
	t.changed()
}

func (t *textInputInstance) killToEnd() {
	pos := t.clampCursor(t.cursor)
	if pos >= len(t.content) {
		return
	}
	t.content = t.content[:pos]
	t.changed()
}

func (t *textInputInstance) moveCursor(pos int) {
	t.cursor = t.clampCursor(pos)
}

func (t *textInputInstance) clampCursor(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(t.content) {
		return len(t.content)
	}
	return pos
}

func (t *textInputInstance) changed() {
	if t.onChange != nil {
		t.onChange(string(t.content))
	}
}

func (t *textInputInstance) IntrinsicSize() (int, int) {
	w := StringWidth(string(t.content)) + 1
	if p := StringWidth(t.placeholder); t.showPlaceholder() && p > w {
		w = p
	}
	return w, 1
}

func (t *textInputInstance) showPlaceholder() bool {
	return len(t.content) == 0 && !t.focused && t.placeholder != ""
}

// ensureVisible scrolls the window so the cursor cell fits within width.
func (t *textInputInstance) ensureVisible(width int) {
	t.cursor = t.clampCursor(t.cursor)
	if t.offset > t.cursor {
		t.offset = t.cursor
	}
	if t.offset < 0 {
		t.offset = 0
	}
	// Slide right until the cursor cell is inside the window.
	for t.offset < t.cursor && t.spanWidth(t.offset, t.cursor)+1 > width {
		t.offset++
	}
}

// spanWidth measures the display width of content[from:to].
func (t *textInputInstance) spanWidth(from, to int) int {
	w := 0
	for _, r := range t.content[from:to] {
		w += RuneWidth(r)
	}
	return w
}

// visibleEnd returns the rune index one past the last rune whose cells
// fit within width, starting at offset.
func (t *textInputInstance) visibleEnd(width int) int {
	w := 0
	end := t.offset
	for end < len(t.content) {
		rw := RuneWidth(t.content[end])
		if w+rw > width {
			break
		}
		w += rw
		end++
	}
	return end
}

func (t *textInputInstance) RenderNode() *Node {
	if !t.mounted() {
		return nil
	}
	rect := t.absRect()
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}

	if t.showPlaceholder() {
		node := NewTextNode(t.placeholder, NewRect(rect.X, rect.Y, StringWidth(t.placeholder), 1))
		node.Props = Props{PropStyle: t.placeholderStyle}
		return NewClipNode(rect, node).WithKey(t.key)
	}

	t.ensureVisible(rect.Width)
	end := t.visibleEnd(rect.Width)

	var segments []*Node
	x := rect.X
	emit := func(runes []rune, style Style) {
		if len(runes) == 0 {
			return
		}
		text := string(runes)
		w := StringWidth(text)
		node := NewTextNode(text, NewRect(x, rect.Y, w, 1))
		node.Props = Props{PropStyle: style}
		segments = append(segments, node)
		x += w
	}

	if !t.focused {
		emit(t.content[t.offset:end], t.textStyle)
	} else {
		cur := t.clampCursor(t.cursor)
		emit(t.content[t.offset:cur], t.textStyle)
		if cur < end {
			emit(t.content[cur:cur+1], t.cursorStyle)
			emit(t.content[cur+1:end], t.textStyle)
		} else {
			// Cursor past the last visible rune renders as a highlighted
			// blank cell.
			emit([]rune{' '}, t.cursorStyle)
		}
	}

	return NewClipNode(rect, segments...).WithKey(t.key)
}
