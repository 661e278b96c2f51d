package match

// Weights distributes the contribution of each attribute to the total
// score. The five weights are expected to sum to 1.0.
type Weights struct {
	Name         float64
	Year         float64
	Manufacturer float64
	Players      float64
	Author       float64
}

// DefaultWeights favors the title heavily; year and manufacturer carry the
// bulk of the rest.
func DefaultWeights() Weights {
	return Weights{
		Name:         0.40,
		Year:         0.20,
		Manufacturer: 0.20,
		Players:      0.10,
		Author:       0.10,
	}
}

// Score holds the per-attribute sub-scores and the weighted total for one
// record pair. Sub-scores are in [0, 1]; Total additionally carries any ROM
// bonus applied by the caller.
type Score struct {
	Name         float64
	Year         float64
	Manufacturer float64
	Players      float64
	Author       float64
	Total        float64
}

func (s *Score) compute(w Weights) {
	s.Total = s.Name*w.Name +
		s.Year*w.Year +
		s.Manufacturer*w.Manufacturer +
		s.Players*w.Players +
		s.Author*w.Author
}
