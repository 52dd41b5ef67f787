package weft

import "github.com/lucasb-eyer/go-colorful"

// GradientDirection controls how a gradient maps onto a region.
type GradientDirection int

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs top-left to bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs bottom-left to top-right.
	GradientDiagonalUp
)

// Gradient is a linear blend between two colors.
// Drawing code samples it with At; Direction tells region fills how to map
// cell positions onto the 0-1 axis.
type Gradient struct {
	Start     Color
	End       Color
	Direction GradientDirection
}

// NewGradient creates a horizontal gradient from start to end.
func NewGradient(start, end Color) Gradient {
	return Gradient{Start: start, End: end, Direction: GradientHorizontal}
}

// WithDirection returns a copy of the gradient with the given direction.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// At returns the blended color at position t, clamped to [0, 1].
// ANSI and default endpoints are converted to RGB before blending;
// the result is always an RGB color.
func (g Gradient) At(t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	start := blendable(g.Start)
	end := blendable(g.End)
	r, gc, b := start.BlendRgb(end, t).RGB255()
	return RGBColor(r, gc, b)
}

// blendable converts a Color to colorful's 0-1 component space.
func blendable(c Color) colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
