package mailer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/rupiah"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("mail").
		Funcs(template.FuncMap{"rupiah": rupiah.Format}).
		ParseFS(templateFS, "templates/*.html"),
)

const (
	TemplateContactBusiness = "contact_business.html"
	TemplateContactReply    = "contact_reply.html"
	TemplatePaymentBusiness = "payment_business.html"
	TemplatePaymentCustomer = "payment_customer.html"
)

// BusinessInfo is the sender identity printed in every template.
type BusinessInfo struct {
	Name          string
	Email         string
	Phone         string
	PaymentMethod string
}

type ContactData struct {
	model.ContactRequest
	Business BusinessInfo
}

type PaymentData struct {
	OrderID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Amount          int64
	Services        []model.OrderServiceLine
	AddOns          []model.OrderAddOnLine
	AdditionalNotes string
	SubmittedAt     string
	ArchiveLocation string
	Business        BusinessInfo
}

// Render executes a named template; values are HTML-escaped.
func Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
