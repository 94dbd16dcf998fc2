package helpers

import (
	"encoding/hex"
	"io"
	"strings"
	"time"

	"github.com/juju/errors"
)

// FoldErrors merges non-nil errors into one, nil when all are nil.
func FoldErrors(errs []error) error {
	ss := make([]string, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			ss = append(ss, e.Error())
		}
	}
	if len(ss) == 0 {
		return nil
	}
	return errors.New(strings.Join(ss, "\n"))
}

// WriteAll retries short writes until b is fully delivered.
func WriteAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// IntSecondDefault converts a config integer to seconds, def when unset.
func IntSecondDefault(x int, def time.Duration) time.Duration {
	if x == 0 {
		return def
	}
	return time.Duration(x) * time.Second
}

func MustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
