package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Branch lookup caching (branches-by-state AJAX endpoint)

func (c *Client) SetBranchesByState(stateID string, payload interface{}, ttl time.Duration) error {
	return c.setJSON("branches:state:"+stateID, payload, ttl)
}

func (c *Client) GetBranchesByState(stateID string, dest interface{}) error {
	return c.getJSON("branches:state:"+stateID, dest)
}

func (c *Client) InvalidateBranchesByState(stateID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "branches:state:"+stateID).Err()
}

// Product quick-info caching (product-info AJAX endpoint)

func (c *Client) SetProductInfo(productID string, payload interface{}, ttl time.Duration) error {
	return c.setJSON("product:info:"+productID, payload, ttl)
}

func (c *Client) GetProductInfo(productID string, dest interface{}) error {
	return c.getJSON("product:info:"+productID, dest)
}

func (c *Client) InvalidateProductInfo(productID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "product:info:"+productID).Err()
}

func (c *Client) setJSON(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload: %w", err)
	}

	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) getJSON(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache payload: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
