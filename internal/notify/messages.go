package notify

import "encoding/json"

const (
	// Client -> server: browser notification permission changed.
	MessageTypePermission = "permission"
	// Server -> client: a reminder fired.
	MessageTypeNotification = "notification"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PermissionPayload struct {
	State string `json:"state"`
}
