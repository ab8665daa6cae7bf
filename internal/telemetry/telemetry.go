// Package telemetry publishes gameplay events to an MQTT broker so that
// dashboards or home automation can react to catches, wins and losses.
package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// ErrTimeout is returned when the broker does not acknowledge in time.
var ErrTimeout = errors.New("telemetry: broker timeout")

// Event is one gameplay event as sent over the wire.
type Event struct {
	Game   string    `json:"game"`
	Kind   string    `json:"kind"`
	Score  int       `json:"score"`
	Player string    `json:"player,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher sends gameplay events somewhere.
type Publisher interface {
	Publish(ev Event) error
	Close()
}

// Config holds broker connection settings.
type Config struct {
	Broker   string // e.g. tcp://localhost:1883; empty disables telemetry
	Topic    string // Root topic, events go to <topic>/<game>/<kind>
	ClientID string
	Username string
	Password string
	QoS      byte
	Timeout  time.Duration
}

// DefaultConfig returns settings for a local broker.
func DefaultConfig() Config {
	return Config{
		Topic:   "catchfish",
		QoS:     1,
		Timeout: 2 * time.Second,
	}
}

// Topic builds the topic an event is published on.
func Topic(root, game, kind string) string {
	return strings.Trim(root, "/") + "/" + game + "/" + kind
}

// MQTTPublisher publishes events as JSON messages.
type MQTTPublisher struct {
	client  mqtt.Client
	topic   string
	qos     byte
	timeout time.Duration
	logger  *log.Logger
}

// Dial connects to the broker named in cfg.
func Dial(cfg Config, logger *log.Logger) (*MQTTPublisher, error) {
	if cfg.Broker == "" {
		return nil, errors.New("telemetry: no broker configured")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.ClientID == "" {
		cfg.ClientID = fmt.Sprintf("catchfish-%d", time.Now().UnixNano())
	}

	options := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("telemetry connected", "broker", cfg.Broker)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("telemetry connection lost", "error", err)
		})
	client := mqtt.NewClient(options)

	token := client.Connect()
	if !token.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("telemetry: connect to %s: %w", cfg.Broker, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("telemetry: connect to %s: %w", cfg.Broker, err)
	}

	return newMQTTPublisher(client, cfg, logger), nil
}

func newMQTTPublisher(client mqtt.Client, cfg Config, logger *log.Logger) *MQTTPublisher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &MQTTPublisher{
		client:  client,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Publish sends ev and waits for the broker to acknowledge it.
func (p *MQTTPublisher) Publish(ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}

	topic := Topic(p.topic, ev.Game, ev.Kind)
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("telemetry: publish %s: %w", topic, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("telemetry: publish %s: %w", topic, err)
	}

	p.logger.Debug("event published", "topic", topic, "score", ev.Score)
	return nil
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

// Nop discards every event.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(Event) error { return nil }

// Close does nothing.
func (Nop) Close() {}

// Memory keeps published events in memory.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

// Publish records ev.
func (m *Memory) Publish(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

// Close does nothing.
func (m *Memory) Close() {}

// Events returns a copy of everything published so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
