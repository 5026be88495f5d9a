package gtick

// Seconds turns frame deltas into whole elapsed seconds. Fractions carry
// over to the next frame.
type Seconds struct {
	acc float64
}

// Add returns how many whole seconds have passed including dt.
func (s *Seconds) Add(dt float64) int {
	if dt <= 0 {
		return 0
	}
	s.acc += dt
	n := int(s.acc)
	s.acc -= float64(n)
	return n
}

func (s *Seconds) Reset() {
	s.acc = 0
}
