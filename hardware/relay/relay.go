// Package relay drives a single digital output line for the display
// cabinet lighting. HIGH is on, LOW is off, startup state is LOW.
package relay

import (
	"strconv"

	"github.com/juju/errors"
	gpio "github.com/temoto/gpio-cdev-go"
)

type Relayer interface {
	Set(on bool) error
	Close() error
}

type lineRelay struct {
	chip  gpio.Chiper
	lines gpio.Lineser
	set   gpio.LineSetFunc
}

func NewLineRelay(chipName, pin string) (Relayer, error) {
	n, err := strconv.ParseUint(pin, 10, 32)
	if err != nil {
		return nil, errors.Annotatef(err, "relay pin=%s", pin)
	}
	line := uint32(n)

	self := &lineRelay{}
	self.chip, err = gpio.Open(chipName, "light")
	if err != nil {
		return nil, errors.Annotatef(err, "relay chip=%s", chipName)
	}
	self.lines, err = self.chip.OpenLines(gpio.GPIOHANDLE_REQUEST_OUTPUT, "light", line)
	if err != nil {
		self.chip.Close()
		return nil, errors.Annotatef(err, "relay chip=%s line=%d", chipName, line)
	}
	self.set = self.lines.SetFunc(line)

	// defined startup state
	if err = self.Set(false); err != nil {
		self.Close()
		return nil, errors.Trace(err)
	}
	return self, nil
}

func (self *lineRelay) Set(on bool) error {
	v := byte(0)
	if on {
		v = 1
	}
	self.set(v)
	return errors.Trace(self.lines.Flush())
}

// NewNoop is the sink when no lighting hardware is configured.
func NewNoop() Relayer { return noop{} }

type noop struct{}

func (noop) Set(on bool) error { return nil }
func (noop) Close() error      { return nil }

func (self *lineRelay) Close() error {
	errs := []error{
		self.lines.Close(),
		self.chip.Close(),
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
