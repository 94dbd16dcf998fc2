package tele

import (
	"bytes"

	"github.com/juju/errors"

	"github.com/MrSplitFlap/IBIS-Sender/ibis"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

// displayBufMax bounds one inbound text payload: 255 content bytes
// plus terminator, matching the encoder working buffer.
const displayBufMax = 256

// ByteSink receives complete framed telegrams for transmission.
type ByteSink interface {
	Send(telegram []byte) error
}

// BoolSink is the lighting output line.
type BoolSink interface {
	Set(on bool) error
}

// Router dispatches inbound commands to the display encoder or the
// lighting output. Stateless between invocations, each command is
// handled to completion with exclusively owned buffers.
type Router struct {
	log     *log2.Log
	address int
	display ByteSink
	light   BoolSink
}

func NewRouter(log *log2.Log, address int, display ByteSink, light BoolSink) *Router {
	return &Router{
		log:     log,
		address: address,
		display: display,
		light:   light,
	}
}

func (self *Router) OnCommand(ch Channel, payload []byte) bool {
	switch ch {
	case ChannelDisplayText:
		if err := self.displayText(payload); err != nil {
			// fire-and-forget channel, no protocol-level nack exists;
			// local log is the only place a rejection shows up
			self.log.Errorf("display text payload=%x err=%v", payload, err)
		}
	case ChannelLight:
		self.lighting(payload)
	default:
		self.log.Debugf("router ignore channel=%s payload=%x", ch, payload)
	}
	return true
}

func (self *Router) displayText(payload []byte) error {
	var buf [displayBufMax]byte
	// truncate to capacity-1, excess bytes are dropped, never overflow
	n := copy(buf[:displayBufMax-1], payload)
	tg, err := ibis.BuildDS021t(self.address, string(buf[:n]))
	if err != nil {
		return errors.Trace(err)
	}
	self.log.Infof("display text=%q telegram=%s", buf[:n], tg.Format())
	return errors.Annotate(self.display.Send(tg.Bytes()), "display send")
}

func (self *Router) lighting(payload []byte) {
	// prefix match is the wire contract: most distinguishing prefix
	// wins, "Off" checked as 3 bytes before "On" as 2, so "Offline"
	// switches off. Anything else is a silent no-op.
	var on bool
	switch {
	case bytes.HasPrefix(payload, []byte("Off")):
		on = false
	case bytes.HasPrefix(payload, []byte("On")):
		on = true
	default:
		self.log.Debugf("light ignore payload=%x", payload)
		return
	}
	if err := self.light.Set(on); err != nil {
		self.log.Errorf("light set on=%t err=%v", on, err)
		return
	}
	self.log.Infof("light on=%t", on)
}
