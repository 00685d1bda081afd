package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sol1corejz/invoicedash/cmd/config"
	"github.com/sol1corejz/invoicedash/internal/logger"
)

// ListCache holds rendered invoice list pages so repeated reads of the same
// query+page skip the store. Mutations invalidate the whole prefix.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

const (
	invoiceListPrefix = "invoices:"
	defaultTTL        = 5 * time.Minute
)

var ErrConnectionFailed = errors.New("redis connection failed")

func New(ctx context.Context) (*ListCache, error) {
	if config.RedisAddress == "" {
		return nil, ErrConnectionFailed
	}

	client := redis.NewClient(&redis.Options{
		Addr: config.RedisAddress,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Error("Error connecting to redis", zap.Error(err))
		return nil, ErrConnectionFailed
	}

	return &ListCache{client: client, ttl: defaultTTL}, nil
}

// NewWithClient wraps an existing client, used by tests.
func NewWithClient(client *redis.Client) *ListCache {
	return &ListCache{client: client, ttl: defaultTTL}
}

func ListKey(query string, page int) string {
	return fmt.Sprintf("%slist:%s:%d", invoiceListPrefix, query, page)
}

// Get returns the cached payload or "" on a miss.
func (c *ListCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (c *ListCache) Set(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// InvalidateInvoices drops every cached invoice list page.
func (c *ListCache) InvalidateInvoices(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, invoiceListPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}

func (c *ListCache) Close() error {
	return c.client.Close()
}
