package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

func writeConfig(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ibis-sender.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadConfigFull(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
hardware {
  ibis {
    device = "/dev/ttyAMA0"
    baud = 1200
  }
  light {
    enable = true
    pin_chip = "/dev/gpiochip0"
    pin = "17"
  }
}
display { address = 3 }
tele {
  enable = true
  client_id = "tram41"
  mqtt_broker = "tcp://192.168.1.10:1883"
  mqtt_password = "secret"
  retry_sec = 5
}
`)
	c, err := ReadConfig(log2.NewTest(t, log2.LDebug), path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyAMA0", c.Hardware.IBIS.Device)
	assert.Equal(t, 1200, c.Hardware.IBIS.Baud)
	assert.Equal(t, "17", c.Hardware.Light.Pin)
	assert.Equal(t, 3, c.Display.Address)
	assert.Equal(t, "tram41", c.Tele.ClientId)
	assert.Equal(t, "tcp://192.168.1.10:1883", c.Tele.MqttBroker)
	assert.Equal(t, 5, c.Tele.RetrySec)
}

func TestReadConfigDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, ``)
	c, err := ReadConfig(log2.NewTest(t, log2.LDebug), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDevice, c.Hardware.IBIS.Device)
	assert.Equal(t, DefaultBaud, c.Hardware.IBIS.Baud)
	assert.Equal(t, DefaultDisplayAddress, c.Display.Address)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()

	_, err := ReadConfig(log2.NewTest(t, log2.LDebug), writeConfig(t, `hardware {`))
	assert.Error(t, err)

	_, err = ReadConfig(log2.NewTest(t, log2.LDebug), "/nonexistent/ibis-sender.hcl")
	assert.Error(t, err)

	_, err = ReadConfig(log2.NewTest(t, log2.LDebug), writeConfig(t, `
hardware { light { enable = true } }
tele { enable = true }
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pin_chip")
	assert.Contains(t, err.Error(), "mqtt_broker")
}
