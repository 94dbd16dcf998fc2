package tele

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MrSplitFlap/IBIS-Sender/helpers"
	tele_config "github.com/MrSplitFlap/IBIS-Sender/internal/tele/config"
	"github.com/MrSplitFlap/IBIS-Sender/log2"
)

const defaultRetry = 5 * time.Second

type transportMqtt struct {
	log       *log2.Log
	onCommand CommandFunc
	m         mqtt.Client
	mopt      *mqtt.ClientOptions

	topicPrefix  string
	topicConnect string
	topicDisplay string
	topicLight   string
}

func (self *transportMqtt) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandFunc) error {
	self.log = log
	mqtt.ERROR = log
	mqtt.CRITICAL = log
	mqtt.WARN = log
	if teleConfig.LogDebug {
		mqtt.DEBUG = log
	}

	self.onCommand = onCommand
	self.configure(teleConfig)
	self.m = mqtt.NewClient(self.mopt)
	if token := self.m.Connect(); token.Error() != nil {
		self.log.Errorf("mqtt connect err=%v", token.Error())
	}
	return nil
}

// configure derives topics and client options from config, no I/O.
func (self *transportMqtt) configure(teleConfig tele_config.Config) {
	clientId := teleConfig.ClientId
	if clientId == "" {
		clientId = "ibis"
	}
	credFun := func() (string, string) {
		return clientId, teleConfig.MqttPassword
	}

	self.topicPrefix = clientId
	self.topicConnect = fmt.Sprintf("%s/c", self.topicPrefix)
	self.topicDisplay = fmt.Sprintf("%s/%s", self.topicPrefix, ChannelDisplayText)
	self.topicLight = fmt.Sprintf("%s/%s", self.topicPrefix, ChannelLight)
	keepAlive := helpers.IntSecondDefault(teleConfig.KeepaliveSec, 60*time.Second)
	pingTimeout := helpers.IntSecondDefault(teleConfig.PingTimeoutSec, 30*time.Second)
	// deliberately fixed interval, not exponential: target network is
	// a static local installation, the bus waits however long it takes
	retryInterval := helpers.IntSecondDefault(teleConfig.RetrySec, defaultRetry)

	self.mopt = mqtt.NewClientOptions().
		AddBroker(teleConfig.MqttBroker).
		SetBinaryWill(self.topicConnect, []byte{0x00}, 1, true).
		SetCleanSession(false).
		SetClientID(clientId).
		SetCredentialsProvider(credFun).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetOrderMatters(false).
		SetConnectRetry(true).
		SetConnectRetryInterval(retryInterval).
		SetAutoReconnect(true).
		SetOnConnectHandler(self.onConnectHandler).
		SetConnectionLostHandler(self.connectLostHandler)
}

func (self *transportMqtt) Close() {
	self.log.Infof("mqtt unsubscribe")
	if token := self.m.Unsubscribe(self.topicDisplay, self.topicLight); token.Wait() && token.Error() != nil {
		self.log.Errorf("mqtt unsubscribe err=%v", token.Error())
	}
	self.m.Disconnect(250)
}

func (self *transportMqtt) messageHandler(c mqtt.Client, msg mqtt.Message) {
	payload := msg.Payload()
	self.log.Debugf("mqtt income topic=%s payload=%x", msg.Topic(), payload)
	switch msg.Topic() {
	case self.topicDisplay:
		self.onCommand(ChannelDisplayText, payload)
	case self.topicLight:
		self.onCommand(ChannelLight, payload)
	default:
		self.log.Debugf("mqtt ignore topic=%s", msg.Topic())
	}
}

func (self *transportMqtt) connectLostHandler(c mqtt.Client, err error) {
	self.log.Infof("mqtt disconnect err=%v", err)
}

func (self *transportMqtt) onConnectHandler(c mqtt.Client) {
	self.log.Infof("mqtt connect")
	subs := map[string]byte{self.topicDisplay: 1, self.topicLight: 1}
	if token := c.SubscribeMultiple(subs, self.messageHandler); token.Wait() && token.Error() != nil {
		self.log.Errorf("mqtt subscribe err=%v", token.Error())
	} else {
		c.Publish(self.topicConnect, 1, true, []byte{0x01})
	}
}
