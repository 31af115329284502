package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

type event struct {
	channel Channel
	payload any
}

// Dispatcher is the fire-and-forget side of the booking flow: each Dispatch
// enqueues without blocking and a worker goroutine does the publishing.
// Publish failures are logged, never propagated.
type Dispatcher struct {
	publisher Publisher
	queue     chan event
	done      chan struct{}
}

func NewDispatcher(publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		queue:     make(chan event, 100),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		body, err := json.Marshal(ev.payload)
		if err != nil {
			log.Println("notify marshal error:", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = d.publisher.Publish(ctx, ev.channel, Message{
			ID:   uuid.NewString(),
			Body: string(body),
		})
		cancel()

		if err != nil {
			log.Println("notify publish error:", err)
		}
	}
}

// Notify publishes the payload to the user-notification channel.
func (d *Dispatcher) Notify(payload any) {
	d.dispatch(ChannelNotification, payload)
}

// SendEmail publishes the payload to the email channel.
func (d *Dispatcher) SendEmail(payload any) {
	d.dispatch(ChannelEmail, payload)
}

func (d *Dispatcher) dispatch(channel Channel, payload any) {
	select {
	case d.queue <- event{channel: channel, payload: payload}:
	default:
		// full queue: drop rather than block the booking flow
		log.Println("notify queue full, dropping event")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
