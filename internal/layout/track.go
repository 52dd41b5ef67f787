package layout

// TrackUnit specifies how a grid Track is sized.
type TrackUnit uint8

const (
	TrackAuto    TrackUnit = iota // Sized to the largest item in the track
	TrackFixed                    // Absolute terminal cells
	TrackPercent                  // Percentage of the container's available space
	TrackFr                       // Weighted share of leftover space
)

// Track represents the size of one grid column or row.
type Track struct {
	Amount float64
	Unit   TrackUnit
}

// AutoTrack returns a Track sized to its content.
func AutoTrack() Track {
	return Track{Unit: TrackAuto}
}

// FixedTrack returns a Track with an absolute size in terminal cells.
func FixedTrack(n int) Track {
	return Track{Amount: float64(n), Unit: TrackFixed}
}

// PercentTrack returns a Track sized as a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func PercentTrack(p float64) Track {
	return Track{Amount: p, Unit: TrackPercent}
}

// FrTrack returns a Track that takes a weighted share of leftover space.
func FrTrack(weight float64) Track {
	return Track{Amount: weight, Unit: TrackFr}
}

// Resolve computes the concrete size for Fixed and Percent tracks.
// Auto and Fr tracks resolve later in the sizing pass and return 0 here.
func (t Track) Resolve(available int) int {
	switch t.Unit {
	case TrackFixed:
		return int(t.Amount)
	case TrackPercent:
		return int(float64(available) * t.Amount / 100.0)
	default:
		return 0
	}
}

// IsDefinite returns true if the track resolves without measuring items.
func (t Track) IsDefinite() bool {
	return t.Unit == TrackFixed || t.Unit == TrackPercent
}
