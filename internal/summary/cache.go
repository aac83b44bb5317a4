// Package summary caches per-state mileage summaries and drops them when the
// underlying trip data changes. Entries are recomputed lazily on the next read.
package summary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/events"
)

// Key identifies one cached summary. A zero TripID (uuid.Nil) is the user's all-time
// summary across completed trips.
type Key struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// TripKey is the key for a single trip's summary.
func TripKey(userID, tripID uuid.UUID) Key {
	return Key{UserID: userID, TripID: tripID}
}

// AllTimeKey is the key for a user's all-time summary.
func AllTimeKey(userID uuid.UUID) Key {
	return Key{UserID: userID}
}

// ComputeFunc produces a fresh summary on a cache miss.
type ComputeFunc func(ctx context.Context) ([]domain.StateMileage, error)

type entry struct {
	value    []domain.StateMileage
	storedAt time.Time
}

// flight tracks the computations running for one key. gen is bumped on every
// invalidation so a computation that started before it never stores its
// stale result. A flight exists only while n > 0.
type flight struct {
	n   int
	gen uint64
}

// Cache holds computed summaries. The zero value is not usable; call NewCache.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[Key]entry
	flights map[Key]*flight
}

// NewCache returns an empty cache. Entries older than ttl are recomputed on
// their next read even if no invalidation arrived; ttl <= 0 disables expiry.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Key]entry),
		flights: make(map[Key]*flight),
	}
}

// Get returns a copy of the summary for key, calling compute on a miss.
// compute runs without the lock held; errors are returned and nothing is stored.
func (c *Cache) Get(ctx context.Context, key Key, compute ComputeFunc) ([]domain.StateMileage, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if !c.expired(e) {
			c.mu.Unlock()
			return clone(e.value), nil
		}
		delete(c.entries, key)
	}
	f, ok := c.flights[key]
	if !ok {
		f = &flight{}
		c.flights[key] = f
	}
	f.n++
	startGen := f.gen
	c.mu.Unlock()

	v, err := compute(ctx)

	c.mu.Lock()
	if err == nil && f.gen == startGen {
		c.entries[key] = entry{value: clone(v), storedAt: c.now()}
	}
	f.n--
	if f.n == 0 {
		delete(c.flights, key)
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate drops the trip's summary and the user's all-time summary.
func (c *Cache) Invalidate(userID, tripID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range []Key{TripKey(userID, tripID), AllTimeKey(userID)} {
		delete(c.entries, k)
		if f, ok := c.flights[k]; ok {
			f.gen++
		}
	}
}

// Reset drops every summary. It is used when change events may have been
// lost, e.g. after the event subscription was re-established.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]entry)
	for _, f := range c.flights {
		f.gen++
	}
}

// Handle is an events.Handler that invalidates on every change event.
func (c *Cache) Handle(_ context.Context, e events.Event) {
	c.Invalidate(e.UserID, e.TripID)
}

// Len reports the number of cached summaries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) expired(e entry) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) >= c.ttl
}

func clone(v []domain.StateMileage) []domain.StateMileage {
	out := make([]domain.StateMileage, len(v))
	copy(out, v)
	return out
}
