package ibis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

func TestFilePortBaudGuard(t *testing.T) {
	t.Parallel()

	p := NewFilePort(log2.NewTest(t, log2.LDebug))
	err := p.Open("/dev/null", 9600)
	require.Error(t, err)

	err = p.Send([]byte("aA21A0x\r\x00"))
	assert.Error(t, err, "send before open must fail")
	assert.NoError(t, p.Close())
}

func TestMockPort(t *testing.T) {
	t.Parallel()

	m := NewMockPort()
	require.NoError(t, m.Open("", 1200))
	require.NoError(t, m.Send([]byte{'a', 'A', 0x0d, 0x00}))
	require.NoError(t, m.Send([]byte{0xff}))
	assert.Equal(t, 2, m.SendCount())
	assert.Equal(t, []byte{'a', 'A', 0x0d, 0x00, 0xff}, m.Bytes())
	m.Reset()
	assert.Equal(t, 0, m.SendCount())
	assert.Empty(t, m.Bytes())
}
