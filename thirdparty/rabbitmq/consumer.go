package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrAPIKeyRejected stops the consumer: no event can be recorded until INTERNAL_API_KEY is fixed.
var ErrAPIKeyRejected = errors.New("internal API rejected the consumer key")

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
	done    chan error
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	c := newConsumer(apiURL, apiKey)
	c.conn = conn
	c.channel = channel
	return c, nil
}

func newConsumer(apiURL, apiKey string) *Consumer {
	return &Consumer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
		done:   make(chan error, 1),
	}
}

// Done receives the error that stopped consumption.
func (c *Consumer) Done() <-chan error {
	return c.done
}

func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		PaymentProofQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				if err := c.handle(ctx, msg); err != nil {
					c.done <- err
					return
				}
			}
		}
	}()

	return nil
}

// handle acks, or nacks with requeue, one delivery. It only returns an error when consuming must stop.
func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) error {
	var event model.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return nil
	}

	if event.Type != constant.EventPaymentProofSubmitted || event.OrderID == "" {
		logger.Warn("[Consumer] skip event", zap.String("type", event.Type), zap.String("order_id", event.OrderID))
		_ = msg.Ack(false)
		return nil
	}

	status, body, err := c.callProofReceivedAPI(ctx, event.OrderID)
	switch {
	case err != nil:
		logger.Error("[Consumer] mark proof received", zap.String("order_id", event.OrderID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		logger.Error("[Consumer] internal API key rejected", zap.String("order_id", event.OrderID), zap.Int("status", status))
		_ = msg.Nack(false, true)
		return ErrAPIKeyRejected
	case status < 200 || status >= 500:
		logger.Error("[Consumer] mark proof received", zap.String("order_id", event.OrderID), zap.Int("status", status), zap.String("body", body))
		_ = msg.Nack(false, true)
		return nil
	case status >= 300:
		// order is gone or already past this step, retrying will not help
		logger.Warn("[Consumer] proof received rejected", zap.String("order_id", event.OrderID), zap.Int("status", status), zap.String("body", body))
		_ = msg.Ack(false)
		return nil
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] proof received recorded", zap.String("order_id", event.OrderID))
	return nil
}

func (c *Consumer) callProofReceivedAPI(ctx context.Context, orderID string) (int, string, error) {
	endpoint := fmt.Sprintf("%s/internal/v1/orders/%s/proof-received", c.apiURL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return 0, "", err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "payment-proof-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
