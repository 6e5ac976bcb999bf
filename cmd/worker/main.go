package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

// worker consumes payment_proof.submitted events and reports them to the API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "payment-proof-consumer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("payment proof consumer running", zap.String("queue", rabbitmq.PaymentProofQueue), zap.String("api", cfg.Internal.APIURL))

	select {
	case <-ctx.Done():
		logger.Info("shutting down consumer")
	case err := <-consumer.Done():
		logger.Fatal("consumer stopped", zap.Error(err))
	}
}
