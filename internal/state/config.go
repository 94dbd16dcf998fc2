package state

import (
	"os"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"

	"github.com/MrSplitFlap/IBIS-Sender/helpers"
	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

// Defaults for the reference deployment.
const (
	DefaultDisplayAddress = 2
	DefaultBaud           = 1200
	DefaultDevice         = "/dev/ttyS0"
)

type Config struct { //nolint:maligned
	Hardware struct {
		IBIS struct {
			Device string `hcl:"device"`
			Baud   int    `hcl:"baud"`
		} `hcl:"ibis"`
		Light struct {
			Enable  bool   `hcl:"enable"`
			PinChip string `hcl:"pin_chip"`
			Pin     string `hcl:"pin"`
		} `hcl:"light"`
	} `hcl:"hardware"`

	Display struct {
		// Address is fixed per deployment but stays configurable,
		// the encoder takes it as a parameter.
		Address int `hcl:"address"`
	} `hcl:"display"`

	Tele tele_config.Config `hcl:"tele"`
}

func ReadConfig(log *log2.Log, path string) (*Config, error) {
	log.Debugf("config reading path=%s", path)
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "config path=%s", path)
	}

	c := &Config{}
	if err = hcl.Unmarshal(bs, c); err != nil {
		return nil, errors.Annotatef(err, "config unmarshal path=%s content='%s'", path, string(bs))
	}
	c.normalize()

	errs := make([]error, 0, 4)
	if c.Hardware.Light.Enable && c.Hardware.Light.PinChip == "" {
		errs = append(errs, errors.Errorf("config hardware.light.pin_chip required when enabled"))
	}
	if c.Hardware.Light.Enable && c.Hardware.Light.Pin == "" {
		errs = append(errs, errors.Errorf("config hardware.light.pin required when enabled"))
	}
	if c.Tele.Enabled && c.Tele.MqttBroker == "" {
		errs = append(errs, errors.Errorf("config tele.mqtt_broker required when enabled"))
	}
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, path string) *Config {
	c, err := ReadConfig(log, path)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}

func (c *Config) normalize() {
	if c.Hardware.IBIS.Device == "" {
		c.Hardware.IBIS.Device = DefaultDevice
	}
	if c.Hardware.IBIS.Baud == 0 {
		c.Hardware.IBIS.Baud = DefaultBaud
	}
	if c.Display.Address == 0 {
		c.Display.Address = DefaultDisplayAddress
	}
}
