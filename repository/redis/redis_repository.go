package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	goredis "github.com/redis/go-redis/v9"
)

// ErrNil is returned by Get and GetSession when the key does not exist.
var ErrNil = goredis.Nil

// Repository defines methods for interacting with Redis key-values.
// It is also the session store: Init, GetSession, SetSession, ClearSession.
type Repository interface {
	Init(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error
	ClearSession(ctx context.Context, sessionID string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// Init checks that the backing server answers before the store is used
func (r *redis) Init(ctx context.Context) error {
	if r.client == nil {
		return errors.New("redis client not configured")
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// GetSession loads a session by id
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	val, err := r.client.Get(ctx, fmt.Sprintf(constant.KeySession, sessionID)).Result()
	if err != nil {
		return nil, err
	}

	var s model.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// SetSession stores a session under its id with TTL
func (r *redis) SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, fmt.Sprintf(constant.KeySession, session.ID), string(b), ttl).Err()
}

// ClearSession removes a session
func (r *redis) ClearSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, fmt.Sprintf(constant.KeySession, sessionID)).Err()
}
