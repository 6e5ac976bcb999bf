package order

import (
	"context"
	"time"

	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	catalogrepo "github.com/muhammadheryan/fw-development/repository/catalog"
	orderrepo "github.com/muhammadheryan/fw-development/repository/order"
	"github.com/muhammadheryan/fw-development/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	validatorx "github.com/muhammadheryan/fw-development/utils/validator"
	"go.uber.org/zap"
)

type OrderApp interface {
	GetCatalog(ctx context.Context) (*model.Catalog, error)
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*model.OrderDetailResponse, error)
	DecodePayment(ctx context.Context, orderData string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error
}

// back-office status moves forward only
var statusNext = map[constant.OrderStatus]constant.OrderStatus{
	constant.OrderStatusPending:        constant.OrderStatusProofSubmitted,
	constant.OrderStatusProofSubmitted: constant.OrderStatusVerified,
}

type orderAppImpl struct {
	config      *config.Config
	catalogRepo catalogrepo.CatalogRepository
	orderRepo   orderrepo.OrderRepository
	publisher   rabbitmq.EventPublisher
}

// NewOrderApp accepts a nil publisher when RabbitMQ is disabled.
func NewOrderApp(config *config.Config, catalogRepo catalogrepo.CatalogRepository, orderRepo orderrepo.OrderRepository, publisher rabbitmq.EventPublisher) OrderApp {
	return &orderAppImpl{config: config, catalogRepo: catalogRepo, orderRepo: orderRepo, publisher: publisher}
}

func (s *orderAppImpl) GetCatalog(ctx context.Context) (*model.Catalog, error) {
	c, err := s.catalogRepo.Get(ctx)
	if err != nil {
		logger.Error("[GetCatalog] get catalog", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[CreateOrder] invalid request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	catalog, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	order, err := BuildOrder(req.ServiceIDs, req.AddOnIDs, req.CustomerInfo, catalog, BuildOptions{
		IDPrefix: s.config.Order.IDPrefix,
		Now:      time.Now(),
		Strict:   s.config.Order.StrictCatalog,
	})
	if err != nil {
		return nil, err
	}

	ttl := s.config.Order.OrderTTL
	if err := s.orderRepo.SaveOrder(ctx, order, ttl); err != nil {
		logger.Error("[CreateOrder] save order", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.SaveFlow(ctx, model.NewPaymentFlow(order.OrderID, constant.PaymentStepInstructions, order.CreatedAt), ttl); err != nil {
		logger.Error("[CreateOrder] save flow", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.SetStatus(ctx, order.OrderID, constant.OrderStatusPending, ttl); err != nil {
		logger.Error("[CreateOrder] set status", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		event := model.OrderEvent{
			Type:          constant.EventOrderCreated,
			OrderID:       order.OrderID,
			Total:         order.Total,
			CustomerEmail: order.CustomerInfo.Email,
			OccurredAt:    order.CreatedAt,
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			logger.Error("[CreateOrder] publish order created", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		}
	}

	transit, err := EncodeTransit(order)
	if err != nil {
		logger.Error("[CreateOrder] encode transit", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateOrderResponse{
		Order:      order,
		OrderData:  transit,
		PaymentURL: s.config.Server.PublicURL + "/payment?orderData=" + transit,
	}, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.OrderDetailResponse, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	status, err := s.orderRepo.GetStatus(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get status", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if status == "" {
		status = constant.OrderStatusPending
	}

	flow, err := s.orderRepo.GetFlow(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get flow", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderDetailResponse{Order: order, Status: status, Flow: flow}, nil
}

// DecodePayment parses the orderData parameter. A stored order with the same id wins over the client copy.
func (s *orderAppImpl) DecodePayment(ctx context.Context, orderData string) (*model.Order, error) {
	order, err := DecodeTransit(orderData)
	if err != nil {
		return nil, err
	}

	stored, err := s.orderRepo.GetOrder(ctx, order.OrderID)
	if err != nil {
		logger.Warn("[DecodePayment] stored order lookup failed, using orderData", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return order, nil
	}
	if stored != nil {
		return stored, nil
	}
	return order, nil
}

// UpdateStatus is idempotent for the current status so redelivered events are harmless.
func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	current, err := s.orderRepo.GetStatus(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateStatus] get status", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if current == "" {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if current == status {
		return nil
	}
	if statusNext[current] != status {
		logger.Info("[UpdateStatus] invalid status change", zap.String("order_id", orderID), zap.String("from", string(current)), zap.String("to", string(status)))
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.SetStatus(ctx, orderID, status, s.config.Order.OrderTTL); err != nil {
		logger.Error("[UpdateStatus] set status", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
