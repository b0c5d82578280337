package notifications

import (
	"encoding/json"
	"time"
)

// Notification is the event published to the notification topic. Consumers
// (email/SMS senders) live outside this service.
type Notification struct {
	ID        string                 `json:"id"`
	Kind      Kind                   `json:"kind"`
	Subject   string                 `json:"subject"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// ToJSON serializes the notification for the wire
func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// PartitionKey returns the Kafka partition key. Keying by kind keeps
// events of the same kind ordered.
func (n *Notification) PartitionKey() string {
	return string(n.Kind)
}
