package streets

import "math"

// Stream is a deterministic pseudo-random sequence. It is a plain value: copying a
// Stream forks the sequence, and the same starting seed always yields the same values.
// Only reproducibility matters here, the statistical quality is poor.
type Stream struct {
	n float64
}

func NewStream(seed int) Stream {
	return Stream{n: float64(seed)}
}

// Next returns a value in [0, 1) along with the stream positioned after it.
func (s Stream) Next() (float64, Stream) {
	x := math.Sin(s.n) * 10000
	v := x - math.Floor(x)
	// Guard against the rounding edge where x - floor(x) lands on 1.
	if v >= 1 {
		v = 0
	}
	return v, Stream{n: s.n + 1}
}

// Float64 draws the next value and advances s.
func (s *Stream) Float64() float64 {
	var v float64
	v, *s = s.Next()
	return v
}

// Chance reports whether the next draw falls below p.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// Intn returns an int in [0, n). It returns 0 without drawing when n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a value in [lo, hi).
func (s *Stream) Between(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}
