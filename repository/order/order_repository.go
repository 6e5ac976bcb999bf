package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	redisrepo "github.com/muhammadheryan/fw-development/repository/redis"
)

// OrderRepository keeps orders, their payment flow and back-office status keyed by order id.
// Lookups of unknown ids return a nil value and a nil error.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *model.Order, ttl time.Duration) error
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	SaveFlow(ctx context.Context, flow *model.PaymentFlow, ttl time.Duration) error
	GetFlow(ctx context.Context, orderID string) (*model.PaymentFlow, error)
	SetStatus(ctx context.Context, orderID string, status constant.OrderStatus, ttl time.Duration) error
	GetStatus(ctx context.Context, orderID string) (constant.OrderStatus, error)
}

type redisStore struct {
	kv redisrepo.Repository
}

func NewOrderRepository(kv redisrepo.Repository) OrderRepository {
	return &redisStore{kv: kv}
}

func (r *redisStore) SaveOrder(ctx context.Context, order *model.Order, ttl time.Duration) error {
	return r.putJSON(ctx, fmt.Sprintf(constant.KeyOrder, order.OrderID), order, ttl)
}

func (r *redisStore) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var o model.Order
	found, err := r.getJSON(ctx, fmt.Sprintf(constant.KeyOrder, orderID), &o)
	if err != nil || !found {
		return nil, err
	}
	return &o, nil
}

func (r *redisStore) SaveFlow(ctx context.Context, flow *model.PaymentFlow, ttl time.Duration) error {
	return r.putJSON(ctx, fmt.Sprintf(constant.KeyOrderFlow, flow.OrderID), flow, ttl)
}

func (r *redisStore) GetFlow(ctx context.Context, orderID string) (*model.PaymentFlow, error) {
	var f model.PaymentFlow
	found, err := r.getJSON(ctx, fmt.Sprintf(constant.KeyOrderFlow, orderID), &f)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

func (r *redisStore) SetStatus(ctx context.Context, orderID string, status constant.OrderStatus, ttl time.Duration) error {
	return r.kv.SetWithTTL(ctx, fmt.Sprintf(constant.KeyOrderStatus, orderID), string(status), ttl)
}

func (r *redisStore) GetStatus(ctx context.Context, orderID string) (constant.OrderStatus, error) {
	val, err := r.kv.Get(ctx, fmt.Sprintf(constant.KeyOrderStatus, orderID))
	if err != nil {
		if errors.Is(err, redisrepo.ErrNil) {
			return "", nil
		}
		return "", err
	}
	return constant.OrderStatus(val), nil
}

func (r *redisStore) putJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.SetWithTTL(ctx, key, string(b), ttl)
}

func (r *redisStore) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	val, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redisrepo.ErrNil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}
