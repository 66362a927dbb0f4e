package dice

import "sync"

// Script is a Roller that replays predetermined values, for tests.
// When a queue runs dry the fallback is returned: 0.99 for Float64
// (every Chance with p < 0.99 fails) and 0 for IntN.
type Script struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

// NewScript creates a Script that replays floats in order.
func NewScript(floats ...float64) *Script {
	return &Script{floats: floats}
}

// Never returns a Script on which every Chance below 0.99 fails.
func Never() *Script { return &Script{} }

// WithInts queues values for IntN.
func (s *Script) WithInts(ints ...int) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, ints...)
	return s
}

// PushFloats appends values to the Float64 queue.
func (s *Script) PushFloats(floats ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, floats...)
}

func (s *Script) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Script) IntN(n int) int {
	if n <= 0 {
		panic("dice: invalid argument to IntN")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// Remaining reports how many scripted floats have not been consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats)
}
