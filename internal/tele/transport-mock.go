package tele

import (
	"context"
	"testing"

	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

// transportMock feeds commands straight into the router, bypassing
// any broker.
type transportMock struct {
	t         testing.TB
	onCommand CommandFunc
	closed    bool
}

func NewTransportMock(t testing.TB) *transportMock {
	return &transportMock{t: t}
}

func (self *transportMock) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandFunc) error {
	self.onCommand = func(ch Channel, payload []byte) bool {
		self.t.Logf("mock command channel=%s payload=%x", ch, payload)
		return onCommand(ch, payload)
	}
	return nil
}

func (self *transportMock) Close() { self.closed = true }

// TestCommand injects one inbound command as if received from the
// broker.
func (self *transportMock) TestCommand(ch Channel, payload []byte) bool {
	if self.onCommand == nil {
		self.t.Fatal("mock transport not initialized")
	}
	return self.onCommand(ch, payload)
}
