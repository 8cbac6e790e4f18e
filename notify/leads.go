package notify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// FlagKey is the persisted "new leads exist" marker.
	FlagKey = "HAS_NEW_LEADS"
	// Channel carries the broadcast fired when a buyer confirms interest.
	Channel = "new-lead-generated"
)

// LeadSignal is the badge plumbing around the document store: one
// persisted boolean plus one broadcast channel, nothing more.
type LeadSignal struct {
	client *redis.Client
}

func NewLeadSignal(client *redis.Client) *LeadSignal {
	return &LeadSignal{client: client}
}

// MarkNew raises the flag and broadcasts so any mounted navigation UI can
// show the badge immediately. It fires on every buyer confirmation,
// duplicate submissions included.
func (l *LeadSignal) MarkNew(ctx context.Context) error {
	if err := l.client.Set(ctx, FlagKey, "true", 0).Err(); err != nil {
		return fmt.Errorf("set lead flag: %w", err)
	}
	if err := l.client.Publish(ctx, Channel, "1").Err(); err != nil {
		return fmt.Errorf("publish lead event: %w", err)
	}
	return nil
}

// HasNew reports the flag; absence reads as false.
func (l *LeadSignal) HasNew(ctx context.Context) (bool, error) {
	value, err := l.client.Get(ctx, FlagKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read lead flag: %w", err)
	}
	return value == "true", nil
}

// Clear removes the marker; entering the management view calls this.
func (l *LeadSignal) Clear(ctx context.Context) error {
	if err := l.client.Del(ctx, FlagKey).Err(); err != nil {
		return fmt.Errorf("clear lead flag: %w", err)
	}
	return nil
}

// Subscribe opens the broadcast subscription; callers must Close it.
func (l *LeadSignal) Subscribe(ctx context.Context) *redis.PubSub {
	return l.client.Subscribe(ctx, Channel)
}
