// ibis-cli is a bench tool: type text, watch the display. Talks
// straight to the serial port, no broker involved.
//
// Commands:
//
//	text <message>  encode DS021t and send (use \n for a line break)
//	raw <hex>       frame arbitrary payload bytes and send
//	addr <n>        change the display address (default 2)
//	hex             toggle printing telegrams instead of sending
package main

import (
	"encoding/hex"
	"flag"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"

	ibis_hw "github.com/MrSplitFlap/IBIS-Sender/hardware/ibis"
	"github.com/MrSplitFlap/IBIS-Sender/helpers/cli"
	"github.com/MrSplitFlap/IBIS-Sender/ibis"
	"github.com/MrSplitFlap/IBIS-Sender/internal/state"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

var suggests = []prompt.Suggest{
	{Text: "text", Description: "send display text telegram"},
	{Text: "raw", Description: "frame and send hex payload"},
	{Text: "addr", Description: "set display address"},
	{Text: "hex", Description: "toggle dry-run hex output"},
}

type session struct {
	log     *log2.Log
	port    ibis_hw.Porter
	address int
	dry     bool
}

func main() {
	flagDevice := flag.String("device", state.DefaultDevice, "serial device")
	flagBaud := flag.Int("baud", state.DefaultBaud, "")
	flagAddr := flag.Int("addr", state.DefaultDisplayAddress, "display address")
	flagDry := flag.Bool("dry", false, "print telegrams instead of sending")
	flag.Parse()

	s := &session{
		log:     log2.NewStderr(log2.LDebug),
		address: *flagAddr,
		dry:     *flagDry,
	}
	s.log.SetFlags(log2.LInteractiveFlags)

	port := ibis_hw.NewFilePort(s.log)
	if !*flagDry {
		if err := port.Open(*flagDevice, *flagBaud); err != nil {
			s.log.Fatal(errors.ErrorStack(err))
		}
		defer port.Close()
	}
	s.port = port

	cli.MainLoop(s.exec, func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	})
}

func (self *session) exec(line string) {
	if line == "" {
		return
	}
	word, arg, _ := strings.Cut(line, " ")
	switch word {
	case "text":
		text := strings.ReplaceAll(arg, `\n`, "\n")
		tg, err := ibis.BuildDS021t(self.address, text)
		if err != nil {
			self.log.Errorf("%v", err)
			return
		}
		self.send(tg)

	case "raw":
		payload, err := hex.DecodeString(arg)
		if err != nil {
			self.log.Errorf("raw wants hex arg=%s err=%v", arg, err)
			return
		}
		tg, err := ibis.Frame(payload)
		if err != nil {
			self.log.Errorf("%v", err)
			return
		}
		self.send(tg)

	case "addr":
		n, err := strconv.Atoi(arg)
		if err != nil {
			self.log.Errorf("addr wants number arg=%s", arg)
			return
		}
		self.address = n
		self.log.Infof("address=%d vdv=%s", n, ibis.EncodeVdvHex(n))

	case "hex":
		self.dry = !self.dry
		self.log.Infof("dry=%t", self.dry)

	default:
		self.log.Errorf("unknown command line=%s", line)
	}
}

func (self *session) send(tg ibis.Telegram) {
	if self.dry {
		self.log.Infof("telegram %s", tg.Format())
		return
	}
	if err := self.port.Send(tg.Bytes()); err != nil {
		self.log.Errorf("send err=%v", err)
		return
	}
	self.log.Infof("sent %d bytes", tg.Len())
}
