package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client provides instance-scoped journal operations on Redis.
type Client struct {
	rdb          *redis.Client
	instanceName string
	now          func() time.Time
}

// NewClient creates a journal client for the specified instance.
// Returns an error if instanceName is empty.
func NewClient(redisOpts *redis.Options, instanceName string) (*Client, error) {
	if instanceName == "" {
		return nil, fmt.Errorf("instance name cannot be empty")
	}

	return &Client{
		rdb:          redis.NewClient(redisOpts),
		instanceName: instanceName,
		now:          time.Now,
	}, nil
}

// Dial parses a redis:// URL, connects and verifies connectivity.
func Dial(ctx context.Context, redisURL, instanceName string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	c, err := NewClient(opts, instanceName)
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("redis not accessible: %w", err)
	}
	return c, nil
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Append records an event and publishes it. Returns the stored entry.
func (c *Client) Append(ctx context.Context, eventType, subject string, data map[string]any) (*Entry, error) {
	entry := &Entry{
		ID:           uuid.New().String(),
		Type:         eventType,
		Subject:      subject,
		Data:         data,
		RecordedAtMs: c.now().UnixMilli(),
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	if err := c.rdb.RPush(ctx, EntriesKey(c.instanceName), payload).Err(); err != nil {
		return nil, fmt.Errorf("failed to append entry to Redis: %w", err)
	}
	if err := c.rdb.Publish(ctx, EventsChannel(c.instanceName), payload).Err(); err != nil {
		return nil, fmt.Errorf("failed to publish entry: %w", err)
	}

	return entry, nil
}

// List returns the most recent entries in append order. limit <= 0 returns
// all entries. Malformed entries are skipped.
func (c *Client) List(ctx context.Context, limit int) ([]*Entry, error) {
	start := int64(0)
	if limit > 0 {
		start = -int64(limit)
	}

	raw, err := c.rdb.LRange(ctx, EntriesKey(c.instanceName), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, &e)
	}
	return entries, nil
}

// Len returns the number of entries recorded for the instance.
func (c *Client) Len(ctx context.Context) (int64, error) {
	n, err := c.rdb.LLen(ctx, EntriesKey(c.instanceName)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}
