package metrics

// Direction is the three-way favorable/unfavorable/neutral classification
// used for display coloring. Zero stays distinguishable from both sides.
type Direction int

const (
	Flat Direction = iota
	Gain
	Loss
)

func (d Direction) String() string {
	switch d {
	case Gain:
		return "gain"
	case Loss:
		return "loss"
	default:
		return "flat"
	}
}

// MarshalJSON serializes the direction as its display string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the display string form.
func (d *Direction) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"gain"`:
		*d = Gain
	case `"loss"`:
		*d = Loss
	default:
		*d = Flat
	}
	return nil
}

// Classify maps a signed value to its direction.
func Classify(v float64) Direction {
	switch {
	case v > 0:
		return Gain
	case v < 0:
		return Loss
	default:
		return Flat
	}
}
