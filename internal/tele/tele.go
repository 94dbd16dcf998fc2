// Package tele connects the IBIS encoder to the operations network.
//
// Tele contract:
//   - Init() fails only on invalid config, network issues are retried
//     in background forever with a fixed interval
//   - inbound commands are dispatched synchronously by Router, encoding
//     never waits for the network
//   - there is no command acknowledgement, failures are local-log only
package tele

import (
	"context"

	"github.com/juju/errors"

	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

type Tele struct {
	config    tele_config.Config
	log       *log2.Log
	transport Transporter
}

func New() *Tele { return &Tele{} }

// NewWithTransporter is the test entry, production path uses MQTT.
func NewWithTransporter(trans Transporter) *Tele {
	return &Tele{transport: trans}
}

func (self *Tele) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, router *Router) error {
	self.config = teleConfig
	self.log = log
	if self.config.LogDebug {
		self.log.SetLevel(log2.LDebug)
	}

	if self.transport == nil { // production path
		self.transport = &transportMqtt{}
	}
	err := self.transport.Init(ctx, log, teleConfig, router.OnCommand)
	return errors.Annotate(err, "tele transport")
}

func (self *Tele) Close() {
	if self.transport != nil {
		self.transport.Close()
	}
}
