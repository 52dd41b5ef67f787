package layout

// sanitize clamps a degenerate dimension to zero.
func sanitize(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// sanitizeWeight clamps a flex/track weight to a usable non-negative value.
// NaN and negative weights become zero.
func sanitizeWeight(f float64) float64 {
	if f != f || f < 0 {
		return 0
	}
	return f
}
