// Package log2 is a thin leveled wrapper around stdlib log.
// Nil *Log is valid and silent, so library code never has to check.
// Primary goal is running parallel tests logging into t.Logf safely.
package log2

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"testing"
)

const (
	Lmicroseconds     int = log.Lmicroseconds
	Lshortfile        int = log.Lshortfile
	LStdFlags         int = log.Ltime | Lshortfile
	LInteractiveFlags int = log.Ltime | Lshortfile | Lmicroseconds
	LServiceFlags     int = Lshortfile
	LTestFlags        int = Lshortfile | Lmicroseconds
)

type Level int32

const (
	LError Level = iota
	LInfo
	LDebug
)

type Func func(format string, args ...interface{})

type Log struct {
	l      *log.Logger
	level  Level
	w      io.Writer
	fatalf Func
}

func NewStderr(level Level) *Log { return NewWriter(os.Stderr, level) }

func NewWriter(w io.Writer, level Level) *Log {
	if w == io.Discard {
		return nil
	}
	return &Log{
		l:     log.New(w, "", LStdFlags),
		level: level,
		w:     w,
	}
}

type funcWriter struct{ f Func }

func (self funcWriter) Write(b []byte) (int, error) {
	self.f(string(b))
	return len(b), nil
}

func NewFunc(f Func, level Level) *Log { return NewWriter(funcWriter{f}, level) }

// NewTest routes into t.Logf and makes Fatalf fail the test instead of
// exiting the process.
func NewTest(t testing.TB, level Level) *Log {
	self := NewFunc(t.Logf, level)
	self.fatalf = t.Fatalf
	return self
}

func (self *Log) SetLevel(l Level) {
	if self == nil {
		return
	}
	atomic.StoreInt32((*int32)(&self.level), int32(l))
}

func (self *Log) SetFlags(f int) {
	if self == nil {
		return
	}
	self.l.SetFlags(f)
}

func (self *Log) Enabled(level Level) bool {
	if self == nil {
		return false
	}
	return atomic.LoadInt32((*int32)(&self.level)) >= int32(level)
}

func (self *Log) Logf(level Level, format string, args ...interface{}) {
	if self.Enabled(level) {
		_ = self.l.Output(3, fmt.Sprintf(format, args...))
	}
}

// Printf and Println satisfy the paho mqtt.Logger interface.
func (self *Log) Printf(format string, args ...interface{}) {
	self.Logf(LInfo, format, args...)
}

func (self *Log) Println(args ...interface{}) {
	if self.Enabled(LInfo) {
		_ = self.l.Output(3, fmt.Sprintln(args...))
	}
}

func (self *Log) Errorf(format string, args ...interface{}) {
	self.Logf(LError, "error: "+format, args...)
}

func (self *Log) Infof(format string, args ...interface{}) {
	self.Logf(LInfo, format, args...)
}

func (self *Log) Debugf(format string, args ...interface{}) {
	self.Logf(LDebug, "debug: "+format, args...)
}

func (self *Log) Fatalf(format string, args ...interface{}) {
	if self == nil {
		os.Exit(1)
	}
	if self.fatalf != nil {
		self.fatalf(format, args...)
		return
	}
	self.Logf(LError, "fatal: "+format, args...)
	os.Exit(1)
}

func (self *Log) Fatal(args ...interface{}) {
	self.Fatalf("%s", fmt.Sprint(args...))
}
