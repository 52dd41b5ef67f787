package weft

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestMergeDirtyRects(t *testing.T) {
	type tc struct {
		input []Rect
		want  []Rect
	}

	tests := map[string]tc{
		"disjoint rects stay separate": {
			input: []Rect{
				{X: 0, Y: 0, Width: 3, Height: 1},
				{X: 10, Y: 5, Width: 3, Height: 1},
			},
			want: []Rect{
				{X: 0, Y: 0, Width: 3, Height: 1},
				{X: 10, Y: 5, Width: 3, Height: 1},
			},
		},
		"overlapping rects merge to the bounding box": {
			input: []Rect{
				{X: 0, Y: 0, Width: 5, Height: 3},
				{X: 3, Y: 1, Width: 5, Height: 3},
			},
			want: []Rect{
				{X: 0, Y: 0, Width: 8, Height: 4},
			},
		},
		"touching rects merge": {
			input: []Rect{
				{X: 0, Y: 0, Width: 4, Height: 1},
				{X: 4, Y: 0, Width: 4, Height: 1},
			},
			want: []Rect{
				{X: 0, Y: 0, Width: 8, Height: 1},
			},
		},
		"chain collapses transitively": {
			input: []Rect{
				{X: 0, Y: 0, Width: 3, Height: 1},
				{X: 6, Y: 0, Width: 3, Height: 1},
				{X: 3, Y: 0, Width: 3, Height: 1},
			},
			want: []Rect{
				{X: 0, Y: 0, Width: 9, Height: 1},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := mergeDirtyRects(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("merged %d rects, want %d: %v", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("rect %d = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

// Drawing a tree resolves its clips in place, so a fresh build of the
// same content must be clip-resolved before diffing against it or every
// node would register as moved.
func TestDiff_DrawnTreeAgainstFreshIdenticalTree(t *testing.T) {
	build := func() *Node {
		return NewElementNode("root", Rect{Width: 40, Height: 10}, nil,
			NewTextNode("steady", Rect{X: 2, Y: 1, Width: 6, Height: 1}),
		)
	}

	drawn := build()
	NewRenderer(40, 10).Draw(drawn)

	fresh := build()
	ResolveClips(fresh, Rect{Width: 40, Height: 10})

	if patches := Diff(drawn, fresh); len(patches) != 0 {
		t.Fatalf("identical trees diffed to %d patches: %#v", len(patches), patches)
	}
}

func TestApplyPatches_TextChange(t *testing.T) {
	before := NewElementNode("root", Rect{Width: 40, Height: 10}, nil,
		NewTextNode("Hi", Rect{X: 5, Y: 2, Width: 2, Height: 1}),
	)
	after := NewElementNode("root", Rect{Width: 40, Height: 10}, nil,
		NewTextNode("Hello World", Rect{X: 5, Y: 2, Width: 11, Height: 1}),
	)

	r := NewRenderer(40, 10)
	r.Draw(before)

	patches := Diff(before, after)
	if len(patches) == 0 {
		t.Fatal("content change should produce patches")
	}
	r.ApplyPatches(after, patches)

	for i, want := range "Hello World" {
		got := r.Buffer().Cell(5+i, 2).Rune
		if got != want {
			t.Errorf("cell (%d, 2) = %q, want %q", 5+i, got, want)
		}
	}
}

func TestApplyPatches_UntouchedCellsSurvive(t *testing.T) {
	before := NewElementNode("root", Rect{Width: 40, Height: 10}, nil,
		NewTextNode("keep", Rect{X: 0, Y: 0, Width: 4, Height: 1}),
		NewTextNode("swap", Rect{X: 0, Y: 5, Width: 4, Height: 1}),
	)
	after := NewElementNode("root", Rect{Width: 40, Height: 10}, nil,
		NewTextNode("keep", Rect{X: 0, Y: 0, Width: 4, Height: 1}),
		NewTextNode("gone", Rect{X: 0, Y: 5, Width: 4, Height: 1}),
	)

	r := NewRenderer(40, 10)
	r.Draw(before)
	r.ApplyPatches(after, Diff(before, after))

	for i, want := range "keep" {
		if got := r.Buffer().Cell(i, 0).Rune; got != want {
			t.Errorf("row 0 cell %d = %q, want %q", i, got, want)
		}
	}
	for i, want := range "gone" {
		if got := r.Buffer().Cell(i, 5).Rune; got != want {
			t.Errorf("row 5 cell %d = %q, want %q", i, got, want)
		}
	}
}

// Patch application against the previous frame must land on the same
// buffer a full draw of the new tree produces, whatever the pair of
// trees. Trees are generated from a fixed seed so failures reproduce.
func TestApplyPatches_EquivalentToFullDraw(t *testing.T) {
	const width, height = 36, 12
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		oldTree := randomTree(rng, width, height)
		newTree := randomTree(rng, width, height)

		patched := NewRenderer(width, height)
		patched.Draw(oldTree)
		patched.ApplyPatches(newTree, Diff(oldTree, newTree))

		full := NewRenderer(width, height)
		full.Draw(newTree)

		if got, want := patched.Buffer().String(), full.Buffer().String(); got != want {
			t.Fatalf("trial %d: patched buffer diverges from full draw\npatched:\n%s\nfull:\n%s",
				trial, got, want)
		}
	}
}

// randomTree builds a root element with a random set of text children,
// some keyed, at random in-bounds positions.
func randomTree(rng *rand.Rand, width, height int) *Node {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}

	n := rng.Intn(6)
	children := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		word := words[rng.Intn(len(words))]
		rect := Rect{
			X:      rng.Intn(width - len(word)),
			Y:      rng.Intn(height),
			Width:  len(word),
			Height: 1,
		}
		child := NewTextNode(word, rect)
		if rng.Intn(2) == 0 {
			child = child.WithKey(fmt.Sprintf("k%d", i))
		}
		children = append(children, child)
	}
	return NewElementNode("root", Rect{Width: width, Height: height}, nil, children...)
}
