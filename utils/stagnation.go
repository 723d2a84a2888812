package utils

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// StagnationTracker detects still lifes and short oscillators from a stream of
// grid hashes. It belongs to the caller's loop, the engine keeps no history.
type StagnationTracker struct {
	history []string
	count   int
}

// Observe records the hash of the latest generation and reports whether it
// repeats one of the previous three generations
func (s *StagnationTracker) Observe(hash string) bool {
	stagnant := false
	if len(s.history) >= 3 {
		for _, h := range s.history[len(s.history)-3:] {
			if h == hash {
				stagnant = true
				break
			}
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}

	if stagnant {
		s.count++
	} else {
		s.count = 0
	}
	return stagnant
}

// Count returns the number of consecutive stagnant observations
func (s *StagnationTracker) Count() int {
	return s.count
}

// Reset forgets all history
func (s *StagnationTracker) Reset() {
	s.history = nil
	s.count = 0
}
