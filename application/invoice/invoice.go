package invoice

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	orderrepo "github.com/muhammadheryan/fw-development/repository/order"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

type InvoiceApp interface {
	Generate(ctx context.Context, orderID string) (*model.InvoiceFile, error)
	GenerateFromOrder(ctx context.Context, order *model.Order) (*model.InvoiceFile, error)
}

type invoiceAppImpl struct {
	config    *config.Config
	orderRepo orderrepo.OrderRepository
	now       func() time.Time
}

func NewInvoiceApp(config *config.Config, orderRepo orderrepo.OrderRepository) InvoiceApp {
	return &invoiceAppImpl{config: config, orderRepo: orderRepo, now: time.Now}
}

func (s *invoiceAppImpl) Generate(ctx context.Context, orderID string) (*model.InvoiceFile, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[Generate] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.GenerateFromOrder(ctx, order)
}

func (s *invoiceAppImpl) GenerateFromOrder(ctx context.Context, order *model.Order) (*model.InvoiceFile, error) {
	if order == nil || order.OrderID == "" || order.CustomerInfo.Name == "" {
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	now := s.now()
	doc := RenderDocument(order, s.issuer(), now.In(s.config.Invoice.Location()))

	var buf bytes.Buffer
	if err := WritePDF(doc, &buf); err != nil {
		logger.Error("[GenerateFromOrder] write pdf", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.InvoiceFile{
		FileName: FileName(order, now),
		Pages:    len(doc.Pages),
		Content:  buf.Bytes(),
	}, nil
}

// FileName is Invoice-<Customer-Name>-<orderId>-<unixms>.pdf.
func FileName(order *model.Order, at time.Time) string {
	name := strings.Join(strings.Fields(order.CustomerInfo.Name), "-")
	if name == "" {
		return fmt.Sprintf("Invoice-%s-%d.pdf", order.OrderID, at.UnixMilli())
	}
	return fmt.Sprintf("Invoice-%s-%s-%d.pdf", name, order.OrderID, at.UnixMilli())
}

func (s *invoiceAppImpl) issuer() Issuer {
	return Issuer{
		Name:          s.config.Invoice.IssuerName,
		Tagline:       s.config.Invoice.IssuerTagline,
		ContactEmail:  s.config.Invoice.ContactEmail,
		ContactPhone:  s.config.Invoice.ContactPhone,
		PaymentMethod: s.config.Payment.Method,
		AccountNumber: s.config.Payment.AccountNumber,
		AccountName:   s.config.Payment.AccountName,
	}
}
