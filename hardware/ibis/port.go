// Package ibis drives the serial side of an IBIS bus: 1200 baud,
// 7 data bits, even parity, 2 stop bits. Telegrams go out as-is, the
// bus adds no further framing.
package ibis

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"

	"github.com/MrSplitFlap/IBIS-Sender/helpers"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

const (
	cNCCS     = 19
	cTCSETSF2 = 0x402c542d
)

type cc_t byte
type speed_t uint32
type tcflag_t uint32
type termios2 struct {
	c_iflag  tcflag_t    // input mode flags
	c_oflag  tcflag_t    // output mode flags
	c_cflag  tcflag_t    // control mode flags
	c_lflag  tcflag_t    // local mode flags
	c_line   cc_t        // line discipline
	c_cc     [cNCCS]cc_t // control characters
	c_ispeed speed_t     // input speed
	c_ospeed speed_t     // output speed
}

// Porter is the outbound byte-sink for framed telegrams.
type Porter interface {
	Open(device string, baud int) error
	Send(telegram []byte) error
	Close() error
}

type filePort struct {
	f   *os.File
	log *log2.Log
	t2  termios2
}

func NewFilePort(log *log2.Log) *filePort { return &filePort{log: log} }

func (self *filePort) Open(device string, baud int) (err error) {
	if baud != 1200 {
		return errors.Errorf("ibis supports only 1200 baud, requested=%d", baud)
	}
	if self.f != nil {
		self.f.Close()
	}
	self.f, err = os.OpenFile(device, syscall.O_RDWR|syscall.O_NOCTTY, 0600)
	if err != nil {
		return errors.Annotatef(err, "ibis open device=%s", device)
	}
	// 7E2 per VDV-300 physical layer
	self.t2 = termios2{
		c_iflag:  unix.IGNBRK,
		c_cflag:  syscall.CLOCAL | syscall.CREAD | syscall.CS7 | unix.PARENB | unix.CSTOPB,
		c_ispeed: speed_t(unix.B1200),
		c_ospeed: speed_t(unix.B1200),
	}
	if err = self.tcsetsf2(); err != nil {
		self.f.Close()
		self.f = nil
		return errors.Annotatef(err, "ibis termios device=%s", device)
	}
	return nil
}

// Send writes the telegram with explicit length. Telegrams may contain
// any byte value including NUL, a terminator scan would corrupt them.
func (self *filePort) Send(telegram []byte) error {
	if self.f == nil {
		return errors.Errorf("ibis send before open")
	}
	self.log.Debugf("ibis send out=%x", telegram)
	return errors.Trace(helpers.WriteAll(self.f, telegram))
}

func (self *filePort) Close() error {
	if self.f == nil {
		return nil
	}
	err := self.f.Close()
	self.f = nil
	return err
}

// set termios, flush pending input and output
func (self *filePort) tcsetsf2() error {
	r, _, errno := syscall.Syscall(syscall.SYS_IOCTL,
		uintptr(self.f.Fd()), uintptr(cTCSETSF2), uintptr(unsafe.Pointer(&self.t2)))
	if errno != 0 {
		return os.NewSyscallError("SYS_IOCTL", errno)
	}
	if r != 0 {
		return errors.Errorf("unknown error from SYS_IOCTL r=%d", r)
	}
	return nil
}
