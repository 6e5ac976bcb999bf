package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_PublishOrderEvent(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch}

	event := model.OrderEvent{
		Type:          constant.EventOrderCreated,
		OrderID:       "FW123456",
		Total:         6300000,
		CustomerEmail: "budi@example.com",
		OccurredAt:    time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, OrderEventExchange, ch.exchange)
	assert.Equal(t, constant.EventOrderCreated, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, ch.msg.DeliveryMode)

	var got model.OrderEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, event.Total, got.Total)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_RequiresType(t *testing.T) {
	p := &Publisher{channel: &fakeChannel{}}
	assert.Error(t, p.PublishOrderEvent(context.Background(), model.OrderEvent{OrderID: "FW1"}))
}
