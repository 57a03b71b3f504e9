// Package eventbus provides in-process pub/sub for workflow lifecycle events.
package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/MelisaYasak/mail-procurement/pkg/events"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Event is anything that can report its own lifecycle event type.
type Event interface {
	GetType() events.EventType
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// EventHandler receives one decoded lifecycle event. The payload is the
// event's JSON encoding; handlers unmarshal the types they care about.
type EventHandler func(ctx context.Context, eventType events.EventType, payload []byte) error

type EventSubscriber interface {
	Subscribe(ctx context.Context, handler EventHandler) error
}

type EventBus interface {
	EventPublisher
	EventSubscriber
	Close() error
}

// WatermillEventBus implements EventBus on top of a watermill
// publisher/subscriber pair.
type WatermillEventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
}

// NewGoChannelEventBus creates an in-memory event bus. Publisher and
// subscriber share one GoChannel instance, so subscriptions must be set up
// before the events they want to observe are published.
func NewGoChannelEventBus(logger *slog.Logger) *WatermillEventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 64,
			Persistent:          false,
		},
		watermill.NewSlogLogger(logger),
	)

	return &WatermillEventBus{
		publisher:  pubSub,
		subscriber: pubSub,
	}
}

func NewWatermillEventBus(pub message.Publisher, sub message.Subscriber) *WatermillEventBus {
	return &WatermillEventBus{
		publisher:  pub,
		subscriber: sub,
	}
}

func (eb *WatermillEventBus) Publish(_ context.Context, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewULID(), payload)
	if typed, ok := event.(Event); ok {
		msg.Metadata.Set(events.EventTypeMetadataKey, string(typed.GetType()))
	}

	return eb.publisher.Publish(events.Topic, msg)
}

func (eb *WatermillEventBus) Subscribe(ctx context.Context, handler EventHandler) error {
	messages, err := eb.subscriber.Subscribe(ctx, events.Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			eventType := events.EventType(msg.Metadata.Get(events.EventTypeMetadataKey))

			if err := handler(ctx, eventType, msg.Payload); err != nil {
				msg.Nack()

				continue
			}

			msg.Ack()
		}
	}()

	return nil
}

func (eb *WatermillEventBus) Close() error {
	return eb.publisher.Close()
}
