package notify

import "context"

// Channel names the outbound queue a message goes to.
type Channel string

const (
	ChannelNotification Channel = "appointments"
	ChannelEmail        Channel = "email"
)

// Message is one outbound publish: a fresh id and the JSON-serialized
// appointment record.
type Message struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// Publisher sends a message to a channel. Implementations must not be
// relied on for booking correctness; the dispatcher never awaits them on
// the request path.
type Publisher interface {
	Publish(ctx context.Context, channel Channel, msg Message) error
}
