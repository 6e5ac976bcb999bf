package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	contactapp "github.com/muhammadheryan/fw-development/application/contact"
	invoiceapp "github.com/muhammadheryan/fw-development/application/invoice"
	orderapp "github.com/muhammadheryan/fw-development/application/order"
	paymentapp "github.com/muhammadheryan/fw-development/application/payment"
	userapp "github.com/muhammadheryan/fw-development/application/user"
	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// multipart overhead allowed on top of the proof size limit
const formOverhead = 1 << 20

type RestHandler struct {
	OrderApp     orderapp.OrderApp
	PaymentApp   paymentapp.PaymentApp
	InvoiceApp   invoiceapp.InvoiceApp
	ContactApp   contactapp.ContactApp
	UserApp      userapp.UserApp
	MaxProofSize int64
}

func NewTransport(cfg *config.Config, OrderApp orderapp.OrderApp, PaymentApp paymentapp.PaymentApp, InvoiceApp invoiceapp.InvoiceApp, ContactApp contactapp.ContactApp, UserApp userapp.UserApp) http.Handler {
	mux := mux.NewRouter()
	mux.NotFoundHandler = http.HandlerFunc(notFound)
	mux.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	rh := &RestHandler{
		OrderApp:     OrderApp,
		PaymentApp:   PaymentApp,
		InvoiceApp:   InvoiceApp,
		ContactApp:   ContactApp,
		UserApp:      UserApp,
		MaxProofSize: cfg.Payment.MaxProofSize,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)
	mux.HandleFunc("/catalog", rh.GetCatalog).Methods(http.MethodGet)
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderId}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderId}/payment", rh.GetPaymentPage).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderId}/payment/acknowledge", rh.AcknowledgePayment).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderId}/payment/back", rh.BackPayment).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderId}/invoice", rh.GetInvoice).Methods(http.MethodGet)
	mux.HandleFunc("/payment", rh.DecodePayment).Methods(http.MethodGet)
	mux.HandleFunc("/invoice", rh.CreateInvoice).Methods(http.MethodPost)

	// Relay endpoints
	mux.HandleFunc("/contact", rh.ContactStatus).Methods(http.MethodGet)
	mux.HandleFunc("/contact", rh.Contact).Methods(http.MethodPost)
	mux.HandleFunc("/payment-proof", rh.PaymentProofStatus).Methods(http.MethodGet)
	mux.HandleFunc("/payment-proof", rh.PaymentProof).Methods(http.MethodPost)

	// protected routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	admin.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/me", rh.Me).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId}", rh.AdminGetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId}/verify", rh.VerifyPayment).Methods(http.MethodPost)
	admin.Use(AuthMiddleware(UserApp))

	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/orders/{orderId}/proof-received", rh.ProofReceived).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} model.StatusMessage
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.StatusMessage{Message: "ok"})
}

// GetCatalog handler
// @Summary Service catalog
// @Description Services and add-ons that can be ordered
// @Tags Order
// @Produce json
// @Success 200 {object} model.Catalog
// @Failure 500 {object} model.ErrorResponse
// @Router /catalog [get]
func (s *RestHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Create order
// @Description Builds an order from catalog ids and returns the payment page link
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} model.CreateOrderResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Order
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DecodePayment handler
// @Summary Payment page from orderData
// @Description Decodes the orderData link parameter into the payment page model
// @Tags Payment
// @Produce json
// @Param orderData query string true "URL-encoded order JSON"
// @Success 200 {object} model.PaymentPageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /payment [get]
func (s *RestHandler) DecodePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := s.OrderApp.DecodePayment(ctx, r.URL.Query().Get("orderData"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentApp.PaymentPage(ctx, order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetPaymentPage handler
// @Summary Payment page of a stored order
// @Tags Payment
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.PaymentPageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{orderId}/payment [get]
func (s *RestHandler) GetPaymentPage(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentApp.GetPaymentPage(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AcknowledgePayment handler
// @Summary Move from instructions to upload
// @Tags Payment
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.PaymentFlow
// @Failure 409 {object} model.ErrorResponse
// @Router /orders/{orderId}/payment/acknowledge [post]
func (s *RestHandler) AcknowledgePayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentApp.Acknowledge(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// BackPayment handler
// @Summary Return from upload to instructions
// @Tags Payment
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.PaymentFlow
// @Failure 409 {object} model.ErrorResponse
// @Router /orders/{orderId}/payment/back [post]
func (s *RestHandler) BackPayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentApp.Back(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetInvoice handler
// @Summary Invoice PDF of a stored order
// @Tags Invoice
// @Produce application/pdf
// @Param orderId path string true "Order ID"
// @Success 200 {file} file
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{orderId}/invoice [get]
func (s *RestHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	file, err := s.InvoiceApp.Generate(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writePDF(w, file)
}

// CreateInvoice handler
// @Summary Invoice PDF from an order body
// @Tags Invoice
// @Accept json
// @Produce application/pdf
// @Param request body model.Order true "Order"
// @Success 200 {file} file
// @Failure 400 {object} model.ErrorResponse
// @Router /invoice [post]
func (s *RestHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, err := s.InvoiceApp.GenerateFromOrder(r.Context(), &order)
	if err != nil {
		writeError(w, err)
		return
	}
	writePDF(w, file)
}
