package contact

import (
	"context"

	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/thirdparty/mailer"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	validatorx "github.com/muhammadheryan/fw-development/utils/validator"
	"go.uber.org/zap"
)

const msgContactSent = "Email sent successfully"

type ContactApp interface {
	Send(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error)
}

type contactAppImpl struct {
	config *config.Config
	mailer mailer.Mailer
}

func NewContactApp(config *config.Config, mailer mailer.Mailer) ContactApp {
	return &contactAppImpl{config: config, mailer: mailer}
}

// Send notifies the business inbox and then sends the auto-reply. Both must succeed.
func (s *contactAppImpl) Send(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[Send] invalid contact request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	data := mailer.ContactData{
		ContactRequest: *req,
		Business: mailer.BusinessInfo{
			Name:  s.config.Invoice.IssuerName,
			Email: s.config.Invoice.ContactEmail,
			Phone: s.config.Invoice.ContactPhone,
		},
	}

	businessHTML, err := mailer.Render(mailer.TemplateContactBusiness, data)
	if err != nil {
		logger.Error("[Send] render business mail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrContactRelay)
	}
	replyHTML, err := mailer.Render(mailer.TemplateContactReply, data)
	if err != nil {
		logger.Error("[Send] render reply mail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrContactRelay)
	}

	businessID, err := s.mailer.Send(ctx, &mailer.Message{
		To:      s.config.Mail.BusinessEmail,
		Subject: "New Contact Form: " + req.Subject,
		HTML:    businessHTML,
	})
	if err != nil {
		logger.Error("[Send] send business mail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrContactRelay)
	}

	customerID, err := s.mailer.Send(ctx, &mailer.Message{
		To:      req.Email,
		Subject: "Thank you for contacting " + s.config.Invoice.IssuerName,
		HTML:    replyHTML,
	})
	if err != nil {
		logger.Error("[Send] send reply mail", zap.String("email", req.Email), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrContactRelay)
	}

	return &model.ContactResponse{
		Success:         true,
		Message:         msgContactSent,
		BusinessEmailID: businessID,
		CustomerEmailID: customerID,
	}, nil
}
