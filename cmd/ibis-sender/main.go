// ibis-sender bridges an operations network to an IBIS/VDV-301
// passenger information display and its cabinet lighting.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/mattn/go-isatty"
	"github.com/temoto/alive/v2"

	ibis_hw "github.com/MrSplitFlap/IBIS-Sender/hardware/ibis"
	"github.com/MrSplitFlap/IBIS-Sender/hardware/relay"
	"github.com/MrSplitFlap/IBIS-Sender/internal/state"
	"github.com/MrSplitFlap/IBIS-Sender/internal/tele"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

func main() {
	flagConfig := flag.String("config", "ibis-sender.hcl", "")
	flag.Parse()

	log := log2.NewStderr(log2.LInfo)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetFlags(log2.LInteractiveFlags)
	} else {
		// under systemd the journal brings its own timestamps
		log.SetFlags(log2.LServiceFlags)
	}
	log.Infof("hello")

	config := state.MustReadConfig(log, *flagConfig)
	if !config.Tele.Enabled {
		log.Fatal("config tele.enable is off, nothing to do")
	}

	port := ibis_hw.NewFilePort(log)
	if err := port.Open(config.Hardware.IBIS.Device, config.Hardware.IBIS.Baud); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	defer port.Close()

	light := relay.NewNoop()
	if config.Hardware.Light.Enable {
		var err error
		light, err = relay.NewLineRelay(config.Hardware.Light.PinChip, config.Hardware.Light.Pin)
		if err != nil {
			log.Fatal(errors.ErrorStack(err))
		}
		defer light.Close()
	}

	router := tele.NewRouter(log, config.Display.Address, port, light)
	t := tele.New()
	if err := t.Init(context.Background(), log, config.Tele, router); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	defer t.Close()

	a := alive.NewAlive()
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		a.Stop()
	}()

	sdnotify(log, daemon.SdNotifyReady)
	log.Infof("init complete address=%d device=%s", config.Display.Address, config.Hardware.IBIS.Device)
	a.Wait()
	sdnotify(log, daemon.SdNotifyStopping)
	log.Infof("stop")
}

func sdnotify(log *log2.Log, s string) {
	if _, err := daemon.SdNotify(false, s); err != nil {
		log.Errorf("sdnotify err=%v", err)
	}
}
