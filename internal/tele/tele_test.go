package tele

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ibis_hw "github.com/MrSplitFlap/IBIS-Sender/hardware/ibis"
	"github.com/MrSplitFlap/IBIS-Sender/hardware/relay"
	"github.com/MrSplitFlap/IBIS-Sender/ibis"
	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

type testEnv struct {
	tele  *Tele
	trans *transportMock
	port  *ibis_hw.MockPort
	light *relay.MockRelay
}

func newTestEnv(t testing.TB, address int) *testEnv {
	env := &testEnv{
		trans: NewTransportMock(t),
		port:  ibis_hw.NewMockPort(),
		light: relay.NewMockRelay(),
	}
	env.tele = NewWithTransporter(env.trans)
	log := log2.NewTest(t, log2.LDebug)
	router := NewRouter(log, address, env.port, env.light)
	err := env.tele.Init(context.Background(), log, tele_config.Config{ClientId: "test"}, router)
	require.NoError(t, err)
	return env
}

// framed reconstructs the expected wire bytes for a payload
func framed(t testing.TB, payload string) []byte {
	tg, err := ibis.Frame([]byte(payload))
	require.NoError(t, err)
	return tg.Bytes()
}

func TestDisplayTextCommand(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 2)
	env.trans.TestCommand(ChannelDisplayText, []byte("Hello"))
	assert.Equal(t, 1, env.port.SendCount())
	assert.Equal(t, framed(t, "aA21A0Hello\n\n\n      "), env.port.Bytes())
}

func TestDisplayTextUmlaut(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 2)
	env.trans.TestCommand(ChannelDisplayText, []byte("Müller"))
	assert.Equal(t, framed(t, "aA21A0M}ller\n\n\n     "), env.port.Bytes())
}

func TestDisplayTextAddressFromConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 26)
	env.trans.TestCommand(ChannelDisplayText, []byte("x"))
	assert.Equal(t, framed(t, "aA1:1A0x\n\n\n          "), env.port.Bytes())
}

func TestDisplayTextTooLongRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 2)
	env.trans.TestCommand(ChannelDisplayText, []byte(strings.Repeat("x", 300)))
	// rejected whole, nothing reaches the wire, no partial telegram
	assert.Equal(t, 0, env.port.SendCount())

	// next command still works, no state was corrupted
	env.trans.TestCommand(ChannelDisplayText, []byte("ok"))
	assert.Equal(t, 1, env.port.SendCount())
}

func TestLightingCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
		expect  []bool
	}{
		{"on", "On", []bool{true}},
		{"off", "Off", []bool{false}},
		// prefix match is the wire contract, longer payloads count
		{"offline-quirk", "Offline", []bool{false}},
		{"online-quirk", "Online", []bool{true}},
		{"case-sensitive", "on", nil},
		{"case-sensitive-caps", "ON", nil},
		{"garbage", "toggle", nil},
		{"empty", "", nil},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv(t, 2)
			env.trans.TestCommand(ChannelLight, []byte(c.payload))
			assert.Equal(t, c.expect, env.light.States())
			assert.Equal(t, 0, env.port.SendCount())
		})
	}
}

func TestUnknownChannelIgnored(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 2)
	env.trans.TestCommand(Channel("bogus"), []byte("On"))
	assert.Equal(t, 0, env.port.SendCount())
	assert.Empty(t, env.light.States())
}

func TestClose(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, 2)
	env.tele.Close()
	assert.True(t, env.trans.closed)
}
