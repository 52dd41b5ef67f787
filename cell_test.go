package weft

import (
	"testing"
)

func TestNewCell_WidthDetection(t *testing.T) {
	type tc struct {
		r         rune
		wantWidth uint8
	}

	tests := map[string]tc{
		"ASCII letter": {
			r:         'A',
			wantWidth: 1,
		},
		"CJK character": {
			r:         '你',
			wantWidth: 2,
		},
		"emoji": {
			r:         '😀',
			wantWidth: 2,
		},
		"box drawing": {
			r:         '┌',
			wantWidth: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCell(tt.r, NewStyle())
			if c.Rune != tt.r {
				t.Errorf("NewCell(%q).Rune = %q, want %q", tt.r, c.Rune, tt.r)
			}
			if c.Width != tt.wantWidth {
				t.Errorf("NewCell(%q).Width = %d, want %d", tt.r, c.Width, tt.wantWidth)
			}
		})
	}
}

func TestCell_IsContinuation(t *testing.T) {
	cont := NewCellWithWidth(0, NewStyle(), 0)
	if !cont.IsContinuation() {
		t.Error("width-0 cell should be a continuation")
	}

	wide := NewCell('你', NewStyle())
	if wide.IsContinuation() {
		t.Error("wide primary cell should not be a continuation")
	}

	narrow := NewCell('a', NewStyle())
	if narrow.IsContinuation() {
		t.Error("narrow cell should not be a continuation")
	}
}

func TestCell_IsEmpty(t *testing.T) {
	type tc struct {
		cell Cell
		want bool
	}

	tests := map[string]tc{
		"zero rune": {
			cell: Cell{},
			want: true,
		},
		"zero rune with style": {
			cell: NewCellWithWidth(0, NewStyle().Foreground(Red), 0),
			want: true,
		},
		"space default style": {
			cell: NewCell(' ', NewStyle()),
			want: true,
		},
		"space with foreground": {
			cell: NewCell(' ', NewStyle().Foreground(Red)),
			want: false,
		},
		"letter": {
			cell: NewCell('x', NewStyle()),
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cell.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCell_Equal(t *testing.T) {
	base := NewCell('a', NewStyle())

	if !base.Equal(NewCell('a', NewStyle())) {
		t.Error("identical cells should be equal")
	}
	if base.Equal(NewCell('b', NewStyle())) {
		t.Error("cells with different runes should not be equal")
	}
	if base.Equal(NewCell('a', NewStyle().Bold())) {
		t.Error("cells with different styles should not be equal")
	}
	if base.Equal(NewCellWithWidth('a', NewStyle(), 2)) {
		t.Error("cells with different widths should not be equal")
	}
}

func TestRuneWidth(t *testing.T) {
	type tc struct {
		r    rune
		want int
	}

	tests := map[string]tc{
		"ASCII letter": {
			r:    'a',
			want: 1,
		},
		"space": {
			r:    ' ',
			want: 1,
		},
		"CJK": {
			r:    '中',
			want: 2,
		},
		"emoji": {
			r:    '😀',
			want: 2,
		},
		"box drawing": {
			r:    '┌',
			want: 1,
		},
		"control character": {
			r:    '\x00',
			want: 1,
		},
		"newline": {
			r:    '\n',
			want: 1,
		},
		"combining mark": {
			r:    '́',
			want: 1,
		},
		"zero-width space": {
			r:    '​',
			want: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	type tc struct {
		s    string
		want int
	}

	tests := map[string]tc{
		"empty": {
			s:    "",
			want: 0,
		},
		"ASCII": {
			s:    "hello",
			want: 5,
		},
		"CJK": {
			s:    "你好",
			want: 4,
		},
		"mixed": {
			s:    "a你b",
			want: 4,
		},
		"combining sequence": {
			s:    "é", // é as base + combining acute
			want: 1,
		},
		"emoji": {
			s:    "😀",
			want: 2,
		},
		"zwj sequence": {
			s:    "\U0001F3F3️‍\U0001F308", // rainbow flag
			want: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}
