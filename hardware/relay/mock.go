package relay

import "sync"

// MockRelay records the last state and all transitions for tests.
type MockRelay struct {
	mu     sync.Mutex
	on     bool
	states []bool
}

func NewMockRelay() *MockRelay { return &MockRelay{} }

func (self *MockRelay) Set(on bool) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.on = on
	self.states = append(self.states, on)
	return nil
}

func (self *MockRelay) Close() error { return nil }

func (self *MockRelay) On() bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.on
}

func (self *MockRelay) States() []bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return append([]bool(nil), self.states...)
}
