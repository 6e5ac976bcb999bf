package transport_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	contactmocks "github.com/muhammadheryan/fw-development/mocks/application/contact"
	invoicemocks "github.com/muhammadheryan/fw-development/mocks/application/invoice"
	ordermocks "github.com/muhammadheryan/fw-development/mocks/application/order"
	paymentmocks "github.com/muhammadheryan/fw-development/mocks/application/payment"
	usermocks "github.com/muhammadheryan/fw-development/mocks/application/user"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/transport"
	cerr "github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde")

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type apps struct {
	order   *ordermocks.OrderApp
	payment *paymentmocks.PaymentApp
	invoice *invoicemocks.InvoiceApp
	contact *contactmocks.ContactApp
	user    *usermocks.UserApp
}

func newHandler(t *testing.T) (http.Handler, apps) {
	t.Helper()
	a := apps{
		order:   ordermocks.NewOrderApp(t),
		payment: paymentmocks.NewPaymentApp(t),
		invoice: invoicemocks.NewInvoiceApp(t),
		contact: contactmocks.NewContactApp(t),
		user:    usermocks.NewUserApp(t),
	}
	cfg := &config.Config{
		Payment:  config.PaymentConfig{MaxProofSize: 64 * 1024},
		Internal: config.InternalConfig{APIKey: "internal-secret"},
	}
	return transport.NewTransport(cfg, a.order, a.payment, a.invoice, a.contact, a.user), a
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRelayEndpoints_MethodNotAllowed(t *testing.T) {
	h, _ := newHandler(t)

	for _, path := range []string{"/contact", "/payment-proof"} {
		for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
			rec := serve(h, httptest.NewRequest(method, path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", method, path)
			body := decodeError(t, rec)
			assert.Equal(t, "Method not allowed", body.Error)
			assert.Equal(t, constant.ErrorTypeCode[constant.ErrMethodNotAllowed], body.Code)
		}
	}
}

func TestRelayEndpoints_Status(t *testing.T) {
	h, _ := newHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Contact API is working!"}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/payment-proof", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Payment Proof API is working!"}`, rec.Body.String())
}

func TestContact(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mockCall func(a apps)
		wantCode int
		wantErr  string
	}{
		{
			name: "sent",
			body: `{"name":"Budi","email":"budi@example.com","subject":"Website","message":"Halo"}`,
			mockCall: func(a apps) {
				a.contact.On("Send", mock.Anything, &model.ContactRequest{Name: "Budi", Email: "budi@example.com", Subject: "Website", Message: "Halo"}).
					Return(&model.ContactResponse{Success: true, Message: "Email sent successfully", BusinessEmailID: "<b>", CustomerEmailID: "<c>"}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed body",
			body:     `{"name":`,
			mockCall: func(a apps) {},
			wantCode: http.StatusBadRequest,
			wantErr:  "Missing required fields",
		},
		{
			name: "relay failure",
			body: `{"name":"Budi","email":"budi@example.com","subject":"Website","message":"Halo"}`,
			mockCall: func(a apps) {
				a.contact.On("Send", mock.Anything, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrContactRelay)).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Failed to send email. Please try again later.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, a := newHandler(t)
			tt.mockCall(a)

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Error)
				return
			}
			var got model.ContactResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.True(t, got.Success)
			assert.Equal(t, "<b>", got.BusinessEmailID)
		})
	}
}

func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("paymentProof", "bukti.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestPaymentProof(t *testing.T) {
	fields := map[string]string{
		"customerPhone":   "081234567890",
		"additionalNotes": "transfer pagi",
		"orderData":       `{"orderId":"FW123456"}`,
	}

	t.Run("relayed", func(t *testing.T) {
		h, a := newHandler(t)
		body, ct := multipartBody(t, fields, pngBytes)

		a.payment.On("SubmitProof", mock.Anything, mock.MatchedBy(func(req *model.PaymentProofRequest) bool {
			return req.PaymentProof != nil &&
				req.PaymentProof.OriginalName == "bukti.png" &&
				bytes.Equal(req.PaymentProof.Content, pngBytes) &&
				req.CustomerPhone == "081234567890" &&
				req.AdditionalNotes == "transfer pagi" &&
				req.OrderData == `{"orderId":"FW123456"}`
		})).Return(&model.PaymentProofResponse{Success: true, OrderID: "FW123456", FileName: "payment-FW123456-1.png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/payment-proof", body)
		req.Header.Set("Content-Type", ct)
		rec := serve(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.PaymentProofResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "FW123456", got.OrderID)
	})

	t.Run("no file reaches the app as nil proof", func(t *testing.T) {
		h, a := newHandler(t)
		body, ct := multipartBody(t, fields, nil)

		a.payment.On("SubmitProof", mock.Anything, mock.MatchedBy(func(req *model.PaymentProofRequest) bool {
			return req.PaymentProof == nil
		})).Return(nil, cerr.SetCustomError(constant.ErrMissingFields)).Once()

		req := httptest.NewRequest(http.MethodPost, "/payment-proof", body)
		req.Header.Set("Content-Type", ct)
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields", decodeError(t, rec).Error)
	})

	t.Run("not multipart", func(t *testing.T) {
		h, _ := newHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/payment-proof", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body over the limit", func(t *testing.T) {
		h, _ := newHandler(t)
		big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 2<<20)...)
		body, ct := multipartBody(t, fields, big)

		req := httptest.NewRequest(http.MethodPost, "/payment-proof", body)
		req.Header.Set("Content-Type", ct)
		rec := serve(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrProofTooLarge], decodeError(t, rec).Code)
	})
}

func TestOrders(t *testing.T) {
	h, a := newHandler(t)

	a.order.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *model.CreateOrderRequest) bool {
		return len(req.ServiceIDs) == 1 && req.ServiceIDs[0] == "frontend"
	})).Return(&model.CreateOrderResponse{Order: &model.Order{OrderID: "FW123456", Total: 6000000}, PaymentURL: "/payment?orderData=x"}, nil).Once()

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"serviceIds":["frontend"],"customerInfo":{"name":"Budi","email":"budi@example.com","phone":"0812"}}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	a.order.On("GetOrder", mock.Anything, "FW000000").Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
	rec = serve(h, httptest.NewRequest(http.MethodGet, "/orders/FW000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`[`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentPage(t *testing.T) {
	h, a := newHandler(t)
	order := &model.Order{OrderID: "FW123456", Total: 6000000}

	a.order.On("DecodePayment", mock.Anything, `{"orderId":"FW123456"}`).Return(order, nil).Once()
	a.payment.On("PaymentPage", mock.Anything, order).Return(&model.PaymentPageResponse{Order: order}, nil).Once()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/payment?orderData=%7B%22orderId%22%3A%22FW123456%22%7D", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	a.payment.On("Acknowledge", mock.Anything, "FW123456").Return(nil, cerr.SetCustomError(constant.ErrInvalidTransition)).Once()
	rec = serve(h, httptest.NewRequest(http.MethodPost, "/orders/FW123456/payment/acknowledge", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInvoice(t *testing.T) {
	h, a := newHandler(t)
	file := &model.InvoiceFile{FileName: "Invoice-Budi-FW123456-1.pdf", Pages: 1, Content: []byte("%PDF-1.3 test")}

	a.invoice.On("Generate", mock.Anything, "FW123456").Return(file, nil).Once()
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/orders/FW123456/invoice", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Invoice-Budi-FW123456-1.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	a.invoice.On("GenerateFromOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool { return o.OrderID == "FW123456" })).Return(file, nil).Once()
	rec = serve(h, httptest.NewRequest(http.MethodPost, "/invoice", strings.NewReader(`{"orderId":"FW123456","customerInfo":{"name":"Budi"}}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	session := &model.Session{ID: "jti-1", Username: "admin", Role: constant.RoleAdmin}

	t.Run("login is public", func(t *testing.T) {
		h, a := newHandler(t)
		a.user.On("Login", mock.Anything, &model.LoginRequest{Username: "admin", Password: "secret"}).
			Return(&model.LoginResponse{Username: "admin", Token: "tok"}, nil).Once()

		rec := serve(h, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"secret"}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		h, _ := newHandler(t)
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/admin/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me with valid token", func(t *testing.T) {
		h, a := newHandler(t)
		a.user.On("ValidateToken", mock.Anything, "tok").Return(session, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := serve(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "admin", got.Username)
	})

	t.Run("non admin session", func(t *testing.T) {
		h, a := newHandler(t)
		a.user.On("ValidateToken", mock.Anything, "tok").Return(&model.Session{ID: "jti-2", Role: constant.RoleUser}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
	})

	t.Run("verify", func(t *testing.T) {
		h, a := newHandler(t)
		a.user.On("ValidateToken", mock.Anything, "tok").Return(session, nil).Once()
		a.order.On("UpdateStatus", mock.Anything, "FW123456", constant.OrderStatusVerified).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/admin/orders/FW123456/verify", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := serve(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"orderId":"FW123456","status":"verified"}`, rec.Body.String())
	})

	t.Run("logout", func(t *testing.T) {
		h, a := newHandler(t)
		a.user.On("ValidateToken", mock.Anything, "tok").Return(session, nil).Once()
		a.user.On("Logout", mock.Anything, "jti-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		req.Header.Set("Authorization", "Bearer tok")
		assert.Equal(t, http.StatusOK, serve(h, req).Code)
	})
}

func TestInternalRoutes(t *testing.T) {
	h, a := newHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/internal/v1/orders/FW123456/proof-received", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeError(t, rec)
	assert.Equal(t, "Forbidden", body.Error)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrForbidden], body.Code)

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/orders/FW123456/proof-received", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = serve(h, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrForbidden], decodeError(t, rec).Code)

	a.order.On("UpdateStatus", mock.Anything, "FW123456", constant.OrderStatusProofSubmitted).Return(nil).Once()
	req = httptest.NewRequest(http.MethodPost, "/internal/v1/orders/FW123456/proof-received", nil)
	req.Header.Set("Authorization", "Bearer internal-secret")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNotFound(t *testing.T) {
	h, _ := newHandler(t)
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], decodeError(t, rec).Code)
}
