package weft

import (
	"testing"
)

func newTestInput(content string) *textInputInstance {
	inst := TextInput{}.CreateInstance().(*textInputInstance)
	inst.Init("/textinput")
	inst.Mount()
	inst.SetValue(content)
	inst.moveCursor(len([]rune(content)))
	return inst
}

// layoutAt commits a layout to an already-mounted instance.
func layoutAt(inst Instance, rect Rect) {
	inst.SetLayout(LayoutResult{
		Rect:      NewRect(0, 0, rect.Width, rect.Height),
		AbsoluteX: rect.X,
		AbsoluteY: rect.Y,
	})
}

func typeString(inst *textInputInstance, s string) {
	for _, r := range s {
		inst.HandleKey(KeyEvent{Key: KeyRune, Rune: r})
	}
}

func TestTextInput_TypeAndValue(t *testing.T) {
	inst := newTestInput("")
	typeString(inst, "hello")

	if got := inst.Value(); got != "hello" {
		t.Errorf("Value() = %q, want %q", got, "hello")
	}
	if got := inst.CursorPos(); got != 5 {
		t.Errorf("CursorPos() = %d, want 5", got)
	}
}

func TestTextInput_InsertMiddle(t *testing.T) {
	inst := newTestInput("ac")
	inst.HandleKey(KeyEvent{Key: KeyLeft})
	typeString(inst, "b")

	if got := inst.Value(); got != "abc" {
		t.Errorf("Value() = %q, want %q", got, "abc")
	}
	if got := inst.CursorPos(); got != 2 {
		t.Errorf("CursorPos() = %d, want 2", got)
	}
}

func TestTextInput_Backspace(t *testing.T) {
	inst := newTestInput("ab")
	inst.HandleKey(KeyEvent{Key: KeyBackspace})

	if got := inst.Value(); got != "a" {
		t.Errorf("Value() = %q, want %q", got, "a")
	}

	inst.HandleKey(KeyEvent{Key: KeyBackspace})
	inst.HandleKey(KeyEvent{Key: KeyBackspace})
	if got := inst.Value(); got != "" {
		t.Errorf("Value() = %q, want empty after backspacing past start", got)
	}
	if got := inst.CursorPos(); got != 0 {
		t.Errorf("CursorPos() = %d, want 0", got)
	}
}

func TestTextInput_DeleteForward(t *testing.T) {
	inst := newTestInput("ab")
	inst.HandleKey(KeyEvent{Key: KeyHome})
	inst.HandleKey(KeyEvent{Key: KeyDelete})

	if got := inst.Value(); got != "b" {
		t.Errorf("Value() = %q, want %q", got, "b")
	}
	if got := inst.CursorPos(); got != 0 {
		t.Errorf("CursorPos() = %d, want 0", got)
	}

	inst.HandleKey(KeyEvent{Key: KeyEnd})
	inst.HandleKey(KeyEvent{Key: KeyDelete})
	if got := inst.Value(); got != "b" {
		t.Errorf("Value() = %q, delete at end must not change content", got)
	}
}

func TestTextInput_HomeEndMovement(t *testing.T) {
	inst := newTestInput("hello")

	inst.HandleKey(KeyEvent{Key: KeyHome})
	if got := inst.CursorPos(); got != 0 {
		t.Errorf("after Home CursorPos() = %d, want 0", got)
	}
	inst.HandleKey(KeyEvent{Key: KeyEnd})
	if got := inst.CursorPos(); got != 5 {
		t.Errorf("after End CursorPos() = %d, want 5", got)
	}

	inst.HandleKey(KeyEvent{Key: KeyCtrlA})
	if got := inst.CursorPos(); got != 0 {
		t.Errorf("after Ctrl-A CursorPos() = %d, want 0", got)
	}
	inst.HandleKey(KeyEvent{Key: KeyCtrlE})
	if got := inst.CursorPos(); got != 5 {
		t.Errorf("after Ctrl-E CursorPos() = %d, want 5", got)
	}
}

func TestTextInput_KillLine(t *testing.T) {
	inst := newTestInput("hello world")
	for range 6 {
		inst.HandleKey(KeyEvent{Key: KeyLeft})
	}

	inst.HandleKey(KeyEvent{Key: KeyCtrlK})
	if got := inst.Value(); got != "hello" {
		t.Errorf("after Ctrl-K Value() = %q, want %q", got, "hello")
	}

	inst.HandleKey(KeyEvent{Key: KeyCtrlU})
	if got := inst.Value(); got != "" {
		t.Errorf("after Ctrl-U Value() = %q, want empty", got)
	}
	if got := inst.CursorPos(); got != 0 {
		t.Errorf("CursorPos() = %d, want 0", got)
	}
}

func TestTextInput_Callbacks(t *testing.T) {
	var changes []string
	var submitted string

	view := TextInput{
		OnChange: func(s string) { changes = append(changes, s) },
		OnSubmit: func(s string) { submitted = s },
	}
	inst := view.CreateInstance().(*textInputInstance)
	inst.Init("/textinput")
	inst.Mount()

	typeString(inst, "ok")
	inst.HandleKey(KeyEvent{Key: KeyEnter})

	if len(changes) != 2 || changes[0] != "o" || changes[1] != "ok" {
		t.Errorf("OnChange calls = %v, want [o ok]", changes)
	}
	if submitted != "ok" {
		t.Errorf("OnSubmit got %q, want %q", submitted, "ok")
	}
	if got := inst.Value(); got != "ok" {
		t.Errorf("submit cleared the content: %q", got)
	}
}

func TestTextInput_UnhandledKeyNotConsumed(t *testing.T) {
	inst := newTestInput("x")
	inst.SetDirty(false)

	if inst.HandleKey(KeyEvent{Key: KeyF1}) {
		t.Error("HandleKey(F1) = true, want false")
	}
	if inst.IsDirty() {
		t.Error("unhandled key marked the instance dirty")
	}
}

func TestTextInput_SetValueClampsCursor(t *testing.T) {
	inst := newTestInput("long content")
	inst.SetValue("ab")
	if got := inst.CursorPos(); got != 2 {
		t.Errorf("CursorPos() = %d, want 2 after shrinking content", got)
	}
}

func TestTextInput_UpdateKeepsEditState(t *testing.T) {
	inst := newTestInput("typed")
	inst.HandleKey(KeyEvent{Key: KeyLeft})
	inst.SetDirty(false)

	inst.Update(TextInput{Placeholder: "new hint"})

	if got := inst.Value(); got != "typed" {
		t.Errorf("Value() = %q, update reset the content", got)
	}
	if got := inst.CursorPos(); got != 4 {
		t.Errorf("CursorPos() = %d, update reset the cursor", got)
	}
	if inst.placeholder != "new hint" {
		t.Errorf("placeholder = %q, want %q", inst.placeholder, "new hint")
	}
	if !inst.IsDirty() {
		t.Error("config change left the instance clean")
	}

	inst.SetDirty(false)
	inst.Update(TextInput{Placeholder: "new hint"})
	if inst.IsDirty() {
		t.Error("identical declaration marked the instance dirty")
	}
}

func TestTextInput_RenderPlaceholder(t *testing.T) {
	view := TextInput{Placeholder: "type here"}
	inst := view.CreateInstance().(*textInputInstance)
	mountAt(t, inst, NewRect(2, 1, 12, 1))

	n := inst.RenderNode()
	if n == nil {
		t.Fatal("RenderNode() = nil")
	}
	if n.Kind != NodeClip {
		t.Errorf("node kind = %v, want NodeClip", n.Kind)
	}
	if len(n.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(n.Children))
	}
	ph := n.Children[0]
	if ph.Content != "type here" {
		t.Errorf("placeholder content = %q, want %q", ph.Content, "type here")
	}
	if s, ok := ph.Props.GetStyle(PropStyle); !ok || !s.Equal(NewStyle().Dim()) {
		t.Error("placeholder is not rendered dim")
	}

	// Focus suppresses the placeholder and shows the cursor cell.
	inst.Focus()
	n = inst.RenderNode()
	if len(n.Children) != 1 {
		t.Fatalf("children = %d, want 1 cursor cell", len(n.Children))
	}
	cur := n.Children[0]
	if cur.Content != " " {
		t.Errorf("cursor cell content = %q, want blank", cur.Content)
	}
	if s, ok := cur.Props.GetStyle(PropStyle); !ok || !s.HasAttr(AttrReverse) {
		t.Error("cursor cell is not reverse video")
	}
}

func TestTextInput_RenderCursorSegments(t *testing.T) {
	inst := newTestInput("abc")
	layoutAt(inst, NewRect(2, 1, 10, 1))
	inst.Focus()
	inst.HandleKey(KeyEvent{Key: KeyHome})
	inst.HandleKey(KeyEvent{Key: KeyRight})

	n := inst.RenderNode()
	if n == nil {
		t.Fatal("RenderNode() = nil")
	}
	if len(n.Children) != 3 {
		t.Fatalf("segments = %d, want 3 (before, cursor, after)", len(n.Children))
	}

	before, cursor, after := n.Children[0], n.Children[1], n.Children[2]
	if before.Content != "a" || cursor.Content != "b" || after.Content != "c" {
		t.Errorf("segments = %q %q %q, want a b c",
			before.Content, cursor.Content, after.Content)
	}
	if before.Rect.X != 2 || cursor.Rect.X != 3 || after.Rect.X != 4 {
		t.Errorf("segment x = %d %d %d, want 2 3 4",
			before.Rect.X, cursor.Rect.X, after.Rect.X)
	}
	if s, ok := cursor.Props.GetStyle(PropStyle); !ok || !s.HasAttr(AttrReverse) {
		t.Error("cursor segment is not reverse video")
	}
}

func TestTextInput_HorizontalScroll(t *testing.T) {
	inst := newTestInput("abcdefgh")
	layoutAt(inst, NewRect(0, 0, 5, 1))
	inst.Focus()

	n := inst.RenderNode()
	if n == nil {
		t.Fatal("RenderNode() = nil")
	}
	// Cursor at the end: the window shows the tail with one cell
	// reserved for the cursor.
	if len(n.Children) != 2 {
		t.Fatalf("segments = %d, want 2 (tail, cursor)", len(n.Children))
	}
	if got := n.Children[0].Content; got != "efgh" {
		t.Errorf("visible tail = %q, want %q", got, "efgh")
	}
	if got := n.Children[1].Content; got != " " {
		t.Errorf("cursor cell = %q, want blank", got)
	}

	// Jumping home scrolls the window back to the start.
	inst.HandleKey(KeyEvent{Key: KeyHome})
	n = inst.RenderNode()
	if inst.offset != 0 {
		t.Errorf("offset = %d, want 0 after Home", inst.offset)
	}
	first := n.Children[0]
	if first.Content != "a" || first.Rect.X != 0 {
		t.Errorf("first segment = %q at x=%d, want cursor on a at x=0",
			first.Content, first.Rect.X)
	}
}

func TestTextInput_WideRuneScroll(t *testing.T) {
	inst := newTestInput("你好世界")
	layoutAt(inst, NewRect(0, 0, 5, 1))
	inst.Focus()

	n := inst.RenderNode()
	// Each rune is two cells wide; with the cursor cell reserved only the
	// last two runes fit.
	if got := n.Children[0].Content; got != "世界" {
		t.Errorf("visible tail = %q, want %q", got, "世界")
	}
	if inst.offset != 2 {
		t.Errorf("offset = %d, want 2", inst.offset)
	}
}
