package payment

import (
	"context"
	"fmt"
	"time"

	apporder "github.com/muhammadheryan/fw-development/application/order"
	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	orderrepo "github.com/muhammadheryan/fw-development/repository/order"
	"github.com/muhammadheryan/fw-development/repository/proof"
	"github.com/muhammadheryan/fw-development/thirdparty/mailer"
	"github.com/muhammadheryan/fw-development/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"github.com/muhammadheryan/fw-development/utils/rupiah"
	"go.uber.org/zap"
)

const (
	msgProofSent          = "Payment proof submitted and emails sent successfully"
	msgProofMailFailed    = "Payment proof uploaded successfully, but email notification failed. We'll contact you directly."
	msgEmailNotifyFailure = "Failed to send email notifications"
)

type PaymentApp interface {
	PaymentPage(ctx context.Context, order *model.Order) (*model.PaymentPageResponse, error)
	GetPaymentPage(ctx context.Context, orderID string) (*model.PaymentPageResponse, error)
	Acknowledge(ctx context.Context, orderID string) (*model.PaymentFlow, error)
	Back(ctx context.Context, orderID string) (*model.PaymentFlow, error)
	SubmitProof(ctx context.Context, req *model.PaymentProofRequest) (*model.PaymentProofResponse, error)
}

type paymentAppImpl struct {
	config    *config.Config
	orderRepo orderrepo.OrderRepository
	store     proof.Store
	archiver  proof.Archiver
	mailer    mailer.Mailer
	publisher rabbitmq.EventPublisher
	now       func() time.Time
}

// NewPaymentApp accepts a nil archiver and a nil publisher.
func NewPaymentApp(config *config.Config, orderRepo orderrepo.OrderRepository, store proof.Store, archiver proof.Archiver, mailer mailer.Mailer, publisher rabbitmq.EventPublisher) PaymentApp {
	return &paymentAppImpl{
		config:    config,
		orderRepo: orderRepo,
		store:     store,
		archiver:  archiver,
		mailer:    mailer,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *paymentAppImpl) PaymentPage(ctx context.Context, order *model.Order) (*model.PaymentPageResponse, error) {
	flow, err := s.orderRepo.GetFlow(ctx, order.OrderID)
	if err != nil {
		logger.Error("[PaymentPage] get flow", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if flow == nil {
		flow = model.NewPaymentFlow(order.OrderID, constant.PaymentStepInstructions, s.now())
	}

	return &model.PaymentPageResponse{
		Order:        order,
		Flow:         flow,
		Instructions: s.instructions(order),
	}, nil
}

func (s *paymentAppImpl) GetPaymentPage(ctx context.Context, orderID string) (*model.PaymentPageResponse, error) {
	order, err := s.getOrder(ctx, "GetPaymentPage", orderID)
	if err != nil {
		return nil, err
	}
	return s.PaymentPage(ctx, order)
}

func (s *paymentAppImpl) Acknowledge(ctx context.Context, orderID string) (*model.PaymentFlow, error) {
	return s.transition(ctx, "Acknowledge", orderID, (*Flow).Acknowledge)
}

func (s *paymentAppImpl) Back(ctx context.Context, orderID string) (*model.PaymentFlow, error) {
	return s.transition(ctx, "Back", orderID, (*Flow).Back)
}

func (s *paymentAppImpl) transition(ctx context.Context, fn, orderID string, apply func(*Flow) error) (*model.PaymentFlow, error) {
	flow, err := s.loadFlow(ctx, fn, orderID)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		if _, err := s.getOrder(ctx, fn, orderID); err != nil {
			return nil, err
		}
		flow = NewFlow(orderID)
	}

	if err := apply(flow); err != nil {
		logger.Info("["+fn+"] transition rejected", zap.String("order_id", orderID), zap.String("step", flow.Step.String()))
		return nil, err
	}

	m := flow.Model(s.now())
	if err := s.orderRepo.SaveFlow(ctx, m, s.config.Order.OrderTTL); err != nil {
		logger.Error("["+fn+"] save flow", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return m, nil
}

// SubmitProof relays the proof to the business inbox. A stored flow must be at UploadProof;
// orders only known from orderData run without stored state.
func (s *paymentAppImpl) SubmitProof(ctx context.Context, req *model.PaymentProofRequest) (*model.PaymentProofResponse, error) {
	if req == nil || req.PaymentProof == nil || req.CustomerPhone == "" || req.OrderData == "" {
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	order, err := apporder.DecodeTransit(req.OrderData)
	if err != nil {
		return nil, err
	}

	stored, err := s.orderRepo.GetOrder(ctx, order.OrderID)
	if err != nil {
		logger.Error("[SubmitProof] get order", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPaymentProofSubmit)
	}
	if stored != nil {
		order = stored
	}

	flow, err := s.loadFlow(ctx, "SubmitProof", order.OrderID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrPaymentProofSubmit)
	}
	persisted := flow != nil
	if !persisted {
		flow = &Flow{OrderID: order.OrderID, Step: constant.PaymentStepUploadProof}
	}
	flow.MaxProofSize = s.config.Payment.MaxProofSize

	resp := &model.PaymentProofResponse{Success: true, OrderID: order.OrderID}
	sub := &Submission{
		Proof:           req.PaymentProof,
		CustomerPhone:   req.CustomerPhone,
		AdditionalNotes: req.AdditionalNotes,
	}

	err = flow.Submit(ctx, sub, func(ctx context.Context, sub *Submission) error {
		return s.relay(ctx, order, sub, resp)
	})
	if err != nil {
		return nil, err
	}

	if persisted {
		if err := s.orderRepo.SaveFlow(ctx, flow.Model(s.now()), s.config.Order.OrderTTL); err != nil {
			logger.Error("[SubmitProof] save flow", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		}
	}
	s.notifySubmitted(ctx, order, stored != nil)

	return resp, nil
}

// relay stores the file, archives it and sends both emails. Only a storage failure is fatal;
// mail failures are reported in the response.
func (s *paymentAppImpl) relay(ctx context.Context, order *model.Order, sub *Submission, resp *model.PaymentProofResponse) error {
	now := s.now()
	ext := ProofExtension(sub.Proof)
	resp.FileName = fmt.Sprintf("payment-%s-%d.%s", order.OrderID, now.UnixMilli(), ext)

	path, err := s.store.Save(ctx, resp.FileName, sub.Proof.Content)
	if err != nil {
		logger.Error("[SubmitProof] save proof", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPaymentProofSubmit)
	}
	defer func() {
		if err := s.store.Remove(context.Background(), path); err != nil {
			logger.Warn("[SubmitProof] cleanup proof", zap.String("path", path), zap.String("error", err.Error()))
		}
	}()

	contentType := sub.Proof.ContentType
	if contentType == "" {
		contentType = constant.DefaultProofMIME
	}

	var archived string
	if s.archiver != nil {
		archived, err = s.archiver.Archive(ctx, resp.FileName, contentType, sub.Proof.Content)
		if err != nil {
			logger.Warn("[SubmitProof] archive proof", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
			archived = ""
		}
	}

	data := mailer.PaymentData{
		OrderID:         order.OrderID,
		CustomerName:    order.CustomerInfo.Name,
		CustomerEmail:   order.CustomerInfo.Email,
		CustomerPhone:   sub.CustomerPhone,
		Amount:          order.Total,
		Services:        order.Services,
		AddOns:          order.AddOns,
		AdditionalNotes: sub.AdditionalNotes,
		SubmittedAt:     rupiah.DateTime(now.In(s.config.Invoice.Location())),
		ArchiveLocation: archived,
		Business:        s.businessInfo(),
	}

	sent, err := s.sendProofEmails(ctx, data, mailer.Attachment{
		FileName:    fmt.Sprintf("payment-proof-%s.%s", order.OrderID, ext),
		ContentType: contentType,
		Content:     sub.Proof.Content,
	})
	if err != nil {
		logger.Error("[SubmitProof] send emails", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		resp.Message = msgProofMailFailed
		resp.EmailError = msgEmailNotifyFailure
		resp.EmailErrorDetails = err.Error()
		return nil
	}

	resp.Message = msgProofSent
	resp.EmailsSent = sent
	return nil
}

func (s *paymentAppImpl) sendProofEmails(ctx context.Context, data mailer.PaymentData, attachment mailer.Attachment) (*model.EmailsSent, error) {
	businessHTML, err := mailer.Render(mailer.TemplatePaymentBusiness, data)
	if err != nil {
		return nil, err
	}
	customerHTML, err := mailer.Render(mailer.TemplatePaymentCustomer, data)
	if err != nil {
		return nil, err
	}

	businessID, err := s.mailer.Send(ctx, &mailer.Message{
		To:          s.config.Mail.BusinessEmail,
		Subject:     fmt.Sprintf("🔔 New Payment Proof - Order %s", data.OrderID),
		HTML:        businessHTML,
		Attachments: []mailer.Attachment{attachment},
	})
	if err != nil {
		return nil, err
	}

	customerID, err := s.mailer.Send(ctx, &mailer.Message{
		To:      data.CustomerEmail,
		Subject: fmt.Sprintf("✅ Payment Proof Received - Order %s", data.OrderID),
		HTML:    customerHTML,
	})
	if err != nil {
		return nil, err
	}

	return &model.EmailsSent{Business: businessID, Customer: customerID}, nil
}

// notifySubmitted hands the status change to the worker, or applies it directly when events are off.
func (s *paymentAppImpl) notifySubmitted(ctx context.Context, order *model.Order, stored bool) {
	if s.publisher != nil {
		event := model.OrderEvent{
			Type:          constant.EventPaymentProofSubmitted,
			OrderID:       order.OrderID,
			Total:         order.Total,
			CustomerEmail: order.CustomerInfo.Email,
			OccurredAt:    s.now(),
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			logger.Error("[SubmitProof] publish proof submitted", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
		}
		return
	}

	if !stored {
		return
	}
	current, err := s.orderRepo.GetStatus(ctx, order.OrderID)
	if err != nil || current != constant.OrderStatusPending {
		return
	}
	if err := s.orderRepo.SetStatus(ctx, order.OrderID, constant.OrderStatusProofSubmitted, s.config.Order.OrderTTL); err != nil {
		logger.Error("[SubmitProof] set status", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
	}
}

func (s *paymentAppImpl) loadFlow(ctx context.Context, fn, orderID string) (*Flow, error) {
	m, err := s.orderRepo.GetFlow(ctx, orderID)
	if err != nil {
		logger.Error("["+fn+"] get flow", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if m == nil {
		return nil, nil
	}
	return FlowFromModel(m), nil
}

func (s *paymentAppImpl) getOrder(ctx context.Context, fn, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("["+fn+"] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *paymentAppImpl) instructions(order *model.Order) *model.PaymentInstructions {
	return &model.PaymentInstructions{
		Method:        s.config.Payment.Method,
		AccountNumber: s.config.Payment.AccountNumber,
		AccountName:   s.config.Payment.AccountName,
		Reference:     "Order " + order.OrderID,
		Amount:        order.Total,
		AmountText:    rupiah.Format(order.Total),
		AmountInWords: rupiah.Words(order.Total),
	}
}

func (s *paymentAppImpl) businessInfo() mailer.BusinessInfo {
	return mailer.BusinessInfo{
		Name:          s.config.Invoice.IssuerName,
		Email:         s.config.Invoice.ContactEmail,
		Phone:         s.config.Invoice.ContactPhone,
		PaymentMethod: s.config.Payment.Method,
	}
}
