// Package mqtt publishes bot telemetry to an MQTT broker.
// Moderation case events go out on warden/cases/<guildId> so external
// dashboards can follow moderation activity live.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/wardenlabs/warden/pkg/logger"
)

// CaseEvent is the payload published when a moderation case changes
type CaseEvent struct {
	Action  string `json:"action"` // "created" or "removed"
	GuildID string `json:"guildId"`
	UserID  string `json:"userId,omitempty"`
	CaseID  int    `json:"caseId"`
	Type    string `json:"type,omitempty"`
}

// Communicator handles the MQTT connection
type Communicator struct {
	client   mqtt.Client
	clientID string
}

var (
	communicator *Communicator
	once         sync.Once
)

// Init initializes the global MQTT communicator
func Init(host, port, username, password, clientID string) *Communicator {
	once.Do(func() {
		communicator = NewCommunicator(host, port, username, password, clientID)
	})
	return communicator
}

// Get returns the global MQTT communicator, which may be nil if Init was
// never called.
func Get() *Communicator {
	return communicator
}

// NewCommunicator creates a new MQTT communicator and starts connecting.
// Connection failures are logged, not fatal: the broker is optional.
func NewCommunicator(host, port, username, password, clientID string) *Communicator {
	mc := &Communicator{
		clientID: clientID,
	}

	// A random suffix avoids client-id collisions with stale sessions.
	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to the MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	mc.client = mqtt.NewClient(opts)

	token := mc.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("MQTT connection error: %v", token.Error()), "MQTT")
	}

	return mc
}

// Destroy closes the MQTT connection
func (mc *Communicator) Destroy() {
	if mc.client != nil && mc.client.IsConnected() {
		mc.client.Disconnect(250)
		logger.System("MQTT connection closed.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (mc *Communicator) IsConnected() bool {
	return mc != nil && mc.client != nil && mc.client.IsConnected()
}

// Publish sends a JSON-encoded message to a topic
func (mc *Communicator) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := mc.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishCaseEvent publishes a moderation case event for a guild. It is a
// no-op when the broker is unreachable.
func (mc *Communicator) PublishCaseEvent(event CaseEvent) {
	if !mc.IsConnected() {
		return
	}

	topic := fmt.Sprintf("warden/cases/%s", event.GuildID)
	if err := mc.Publish(topic, event); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish case event #%d: %v", event.CaseID, err), "MQTT")
	}
}

// PublishCaseEvent publishes through the global communicator if one exists
func PublishCaseEvent(event CaseEvent) {
	if communicator != nil {
		communicator.PublishCaseEvent(event)
	}
}
