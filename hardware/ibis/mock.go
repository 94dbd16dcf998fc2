package ibis

// Mock Porter to test telegram producers without a serial device.
import (
	"bytes"
	"sync"
)

type MockPort struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	sent int
}

func NewMockPort() *MockPort { return &MockPort{} }

func (self *MockPort) Open(device string, baud int) error { return nil }

func (self *MockPort) Send(telegram []byte) error {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.buf.Write(telegram)
	self.sent++
	return nil
}

func (self *MockPort) Close() error { return nil }

// Bytes returns everything sent so far, concatenated.
func (self *MockPort) Bytes() []byte {
	self.mu.Lock()
	defer self.mu.Unlock()
	return append([]byte(nil), self.buf.Bytes()...)
}

func (self *MockPort) SendCount() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.sent
}

func (self *MockPort) Reset() {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.buf.Reset()
	self.sent = 0
}
