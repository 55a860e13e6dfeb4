package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const messageChannelPrefix = "messages:"

// MessageBroker fans newly created messages out to WebSocket subscribers
// through Redis Pub/Sub, one channel per thread. Delivery is best-effort;
// missed events are recovered from the store via GET /api/messages.
type MessageBroker struct {
	rdb *redis.Client
}

func NewMessageBroker(rdb *redis.Client) *MessageBroker {
	return &MessageBroker{rdb: rdb}
}

// Publish broadcasts a normalized message document to the thread's channel.
func (b *MessageBroker) Publish(ctx context.Context, threadID string, msg bson.M) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, messageChannelPrefix+threadID, data).Err()
}

// Subscribe returns a channel of message documents published to the thread,
// and a stop function that must be called when the consumer is done.
// The channel closes when the subscription ends.
func (b *MessageBroker) Subscribe(ctx context.Context, threadID string) (<-chan bson.M, func()) {
	sub := b.rdb.Subscribe(ctx, messageChannelPrefix+threadID)
	out := make(chan bson.M, 16)

	go func() {
		defer close(out)
		for m := range sub.Channel() {
			var doc bson.M
			if err := json.Unmarshal([]byte(m.Payload), &doc); err != nil {
				log.Printf("dropping malformed message event: %v", err)
				continue
			}
			select {
			case out <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
