// Separate package is workaround to import cycles.
package tele_config

type Config struct { //nolint:maligned
	Enabled        bool   `hcl:"enable"`
	ClientId       string `hcl:"client_id"`
	KeepaliveSec   int    `hcl:"keepalive_sec"`
	LogDebug       bool   `hcl:"log_debug"`
	MqttBroker     string `hcl:"mqtt_broker"`
	MqttPassword   string `hcl:"mqtt_password"` // secret
	PingTimeoutSec int    `hcl:"ping_timeout_sec"`
	RetrySec       int    `hcl:"retry_sec"`
}
