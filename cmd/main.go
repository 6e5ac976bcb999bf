package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	contactapp "github.com/muhammadheryan/fw-development/application/contact"
	invoiceapp "github.com/muhammadheryan/fw-development/application/invoice"
	orderapp "github.com/muhammadheryan/fw-development/application/order"
	paymentapp "github.com/muhammadheryan/fw-development/application/payment"
	userapp "github.com/muhammadheryan/fw-development/application/user"
	"github.com/muhammadheryan/fw-development/cmd/config"
	redisclient "github.com/muhammadheryan/fw-development/cmd/redis"
	_ "github.com/muhammadheryan/fw-development/docs"
	catalogRepo "github.com/muhammadheryan/fw-development/repository/catalog"
	orderRepo "github.com/muhammadheryan/fw-development/repository/order"
	"github.com/muhammadheryan/fw-development/repository/proof"
	redisRepo "github.com/muhammadheryan/fw-development/repository/redis"
	"github.com/muhammadheryan/fw-development/thirdparty/mailer"
	"github.com/muhammadheryan/fw-development/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fw-development/transport"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

// @title FW DEVELOPMENT API
// @version 1.0
// @description FW Development order intake API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "fw-development-api"); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	client, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	RedisRepo := redisRepo.NewRepository(client)
	if err := RedisRepo.Init(ctx); err != nil {
		logger.Fatal("err init session store", zap.Error(err))
	}
	OrderRepo := orderRepo.NewOrderRepository(RedisRepo)
	CatalogRepo, err := catalogRepo.NewCatalogRepository(cfg.Order.CatalogPath)
	if err != nil {
		logger.Fatal("err load catalog", zap.Error(err))
	}
	ProofStore := proof.NewLocalStore(cfg.Payment.UploadDir)

	var ProofArchiver proof.Archiver
	if cfg.Storage.ProofBucket != "" {
		ProofArchiver, err = proof.NewS3Archiver(ctx, cfg.Storage.AWSRegion, cfg.Storage.ProofBucket)
		if err != nil {
			logger.Fatal("err init proof archive", zap.Error(err))
		}
		logger.Info("payment proofs archived to s3", zap.String("bucket", cfg.Storage.ProofBucket))
	}

	// Initialize third parties
	Mailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		FromName: cfg.Mail.FromName,
	})
	if cfg.Mail.Username == "" {
		logger.Warn("GMAIL_USER is empty, relay endpoints will fail to send")
	}

	var Publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		Publisher = p
	}

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(cfg, CatalogRepo, OrderRepo, Publisher)
	PaymentApp := paymentapp.NewPaymentApp(cfg, OrderRepo, ProofStore, ProofArchiver, Mailer, Publisher)
	InvoiceApp := invoiceapp.NewInvoiceApp(cfg, OrderRepo)
	ContactApp := contactapp.NewContactApp(cfg, Mailer)
	UserApp := userapp.NewUserApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(cfg, OrderApp, PaymentApp, InvoiceApp, ContactApp, UserApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
