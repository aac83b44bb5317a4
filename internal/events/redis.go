package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel is the Redis pub/sub channel shared by every API instance.
const Channel = "haulledger:events"

const (
	dialTimeout       = 5 * time.Second
	receiveRetryDelay = time.Second
)

// Dial parses a redis:// URL, connects, and validates the connection with PING.
func Dial(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("events.Dial: parse url: %w", err)
	}
	opts.DialTimeout = dialTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("events.Dial: ping: %w", err)
	}
	return client, nil
}

// envelope is the wire form of an Event on the Redis channel.
type envelope struct {
	Origin string `json:"origin"`
	Event  Event  `json:"event"`
}

// RedisBus fans events out locally and to other API instances over Redis
// pub/sub. Local subscribers see an event before Publish returns; remote
// instances receive it in their Run loop. Cross-instance delivery is
// best-effort: whenever messages may have been missed, the OnResync hooks run
// so caches fed by this bus can drop what they hold.
type RedisBus struct {
	client *redis.Client
	origin string
	local  *MemoryBus
	logger *slog.Logger

	mu     sync.Mutex
	resync []func()
}

// NewRedisBus returns a bus publishing on Channel through client.
func NewRedisBus(client *redis.Client, logger *slog.Logger) *RedisBus {
	return &RedisBus{
		client: client,
		origin: uuid.NewString(),
		local:  NewMemoryBus(),
		logger: logger,
	}
}

// Publish delivers e to local subscribers, then publishes it to Redis.
// A Redis failure is returned after local delivery has already happened.
func (b *RedisBus) Publish(ctx context.Context, e Event) error {
	b.local.deliver(ctx, e)

	payload, err := json.Marshal(envelope{Origin: b.origin, Event: e})
	if err != nil {
		return fmt.Errorf("events.RedisBus.Publish: marshal: %w", err)
	}
	if err := b.client.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("events.RedisBus.Publish: %w", err)
	}
	return nil
}

// Subscribe registers h for both local and remote events.
func (b *RedisBus) Subscribe(h Handler) func() {
	return b.local.Subscribe(h)
}

// OnResync registers f to run each time the subscription is (re)established
// or a receive error means remote events may have been lost.
func (b *RedisBus) OnResync(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resync = append(b.resync, f)
}

// Run receives events published by other instances and delivers them to
// local subscribers until ctx is cancelled, then returns ctx.Err(). Receive
// errors are retried; go-redis reconnects and resubscribes on the next
// receive. Events carrying this bus's own origin are skipped because they were
// delivered at publish time.
func (b *RedisBus) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, Channel)
	defer sub.Close()

	for {
		msg, err := sub.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Warn("events: redis receive failed, retrying", "err", err)
			b.resynced()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(receiveRetryDelay):
			}
			continue
		}

		switch m := msg.(type) {
		case *redis.Subscription:
			if m.Kind == "subscribe" {
				b.resynced()
			}
		case *redis.Message:
			b.handle(ctx, m.Payload)
		}
	}
}

func (b *RedisBus) handle(ctx context.Context, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.logger.Warn("events: dropping malformed message", "err", err)
		return
	}
	if env.Origin == b.origin {
		return
	}
	b.local.deliver(ctx, env.Event)
}

func (b *RedisBus) resynced() {
	b.mu.Lock()
	hooks := make([]func(), len(b.resync))
	copy(hooks, b.resync)
	b.mu.Unlock()

	for _, f := range hooks {
		f()
	}
}
