package tele

import (
	"context"

	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

// Channel tags the two inbound command kinds.
type Channel string

const (
	ChannelDisplayText Channel = "display/text"
	ChannelLight       Channel = "light"
)

// CommandFunc handles one inbound command. Payload is raw bytes with
// explicit length, may contain anything, and is only valid during the
// call.
type CommandFunc func(ch Channel, payload []byte) bool

// Transporter delivers inbound commands from the operations network.
// Connection keeping and retry live behind this interface, the
// encoding path never blocks on it.
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandFunc) error
	Close()
}
