package weft

import "testing"

func TestBorderStyleChars(t *testing.T) {
	type tc struct {
		style    BorderStyle
		topLeft  rune
		top      rune
		botRight rune
	}

	tests := map[string]tc{
		"single":  {style: BorderSingle, topLeft: '┌', top: '─', botRight: '┘'},
		"double":  {style: BorderDouble, topLeft: '╔', top: '═', botRight: '╝'},
		"rounded": {style: BorderRounded, topLeft: '╭', top: '─', botRight: '╯'},
		"thick":   {style: BorderThick, topLeft: '┏', top: '━', botRight: '┛'},
		"none":    {style: BorderNone, topLeft: ' ', top: ' ', botRight: ' '},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			chars := tt.style.Chars()
			if chars.TopLeft != tt.topLeft {
				t.Errorf("TopLeft = %q, want %q", chars.TopLeft, tt.topLeft)
			}
			if chars.Top != tt.top {
				t.Errorf("Top = %q, want %q", chars.Top, tt.top)
			}
			if chars.BottomRight != tt.botRight {
				t.Errorf("BottomRight = %q, want %q", chars.BottomRight, tt.botRight)
			}
		})
	}
}

func TestDrawBoxClipped_FullClip(t *testing.T) {
	buf := NewBuffer(8, 4)
	rect := Rect{Width: 6, Height: 3}
	DrawBoxClipped(buf, rect, BorderSingle, NewStyle(), buf.Rect())

	want := "┌────┐\n│    │\n└────┘\n"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("buffer mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawBoxClipped_PartialClip(t *testing.T) {
	buf := NewBuffer(8, 4)
	rect := Rect{Width: 6, Height: 4}
	clip := Rect{Width: 8, Height: 2} // Top half visible.
	DrawBoxClipped(buf, rect, BorderSingle, NewStyle(), clip)

	if got := buf.Cell(0, 0).Rune; got != '┌' {
		t.Errorf("cell (0, 0) = %q, want the top-left corner", got)
	}
	if got := buf.Cell(0, 1).Rune; got != '│' {
		t.Errorf("cell (0, 1) = %q, want the left edge", got)
	}
	// Rows below the clip stay untouched.
	if got := buf.Cell(0, 3).Rune; got != ' ' {
		t.Errorf("cell (0, 3) = %q, want it left blank", got)
	}
	if got := buf.Cell(2, 3).Rune; got != ' ' {
		t.Errorf("cell (2, 3) = %q, want it left blank", got)
	}
}

func TestDrawBoxClipped_TooSmall(t *testing.T) {
	buf := NewBuffer(4, 4)
	DrawBoxClipped(buf, Rect{Width: 1, Height: 1}, BorderSingle, NewStyle(), buf.Rect())

	if got := buf.Cell(0, 0).Rune; got != ' ' {
		t.Errorf("cell (0, 0) = %q, want a 1x1 rect to draw nothing", got)
	}
}

func TestDrawBoxGradientClipped_EndpointColors(t *testing.T) {
	start := RGBColor(255, 0, 0)
	end := RGBColor(0, 0, 255)
	g := NewGradient(start, end)

	buf := NewBuffer(10, 5)
	rect := Rect{Width: 10, Height: 5}
	DrawBoxGradientClipped(buf, rect, BorderSingle, g, NewStyle(), buf.Rect())

	if got := buf.Cell(0, 0).Style.Fg; !got.Equal(start) {
		t.Errorf("top-left fg = %v, want the gradient start color", got)
	}
	if got := buf.Cell(0, 0).Rune; got != '┌' {
		t.Errorf("top-left rune = %q, want the corner", got)
	}
	// The perimeter gradient is mirrored, so the wrap point next to the
	// origin carries the start color as well.
	if got := buf.Cell(0, 1).Style.Fg; got.Equal(end) {
		t.Error("cell adjacent to the wrap point must not jump to the end color")
	}
}
