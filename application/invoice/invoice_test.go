package invoice_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	appinvoice "github.com/muhammadheryan/fw-development/application/invoice"
	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	ordermocks "github.com/muhammadheryan/fw-development/mocks/repository/order"
	"github.com/muhammadheryan/fw-development/model"
	cerr "github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var invoiceNamePattern = regexp.MustCompile(`^Invoice-Budi-Santoso-FW123456-\d+\.pdf$`)

func testConfig() *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{
			Method:        "OVO Transfer",
			AccountNumber: "085391000900",
			AccountName:   "Fadjri Wivindi",
		},
		Invoice: config.InvoiceConfig{
			IssuerName:    "FW Development",
			IssuerTagline: "Professional Development Services with Quality Results",
			ContactEmail:  "fadjri.w@gmail.com",
			ContactPhone:  "+62 853-91000-900",
			Timezone:      "Asia/Makassar",
		},
	}
}

func TestInvoiceApp_Generate(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  string
		mockCall func(f fields)
		wantErr  constant.ErrorType
	}{
		{
			name:    "stored order",
			fields:  fields{orderRepo: ordermocks.NewOrderRepository(t)},
			orderID: "FW123456",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "FW123456").Return(sampleOrder(), nil).Once()
			},
		},
		{
			name:    "unknown order",
			fields:  fields{orderRepo: ordermocks.NewOrderRepository(t)},
			orderID: "FW000000",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "FW000000").Return(nil, nil).Once()
			},
			wantErr: constant.ErrNotFound,
		},
		{
			name:    "store failure",
			fields:  fields{orderRepo: ordermocks.NewOrderRepository(t)},
			orderID: "FW123456",
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, "FW123456").Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			s := appinvoice.NewInvoiceApp(testConfig(), tt.fields.orderRepo)

			got, err := s.Generate(context.Background(), tt.orderID)
			if tt.wantErr != constant.Successful {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("Generate() error = %v, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantErr] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantErr])
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() unexpected error = %v", err)
			}
			assert.Regexp(t, invoiceNamePattern, got.FileName)
			assert.Equal(t, 1, got.Pages)
			assert.True(t, bytes.HasPrefix(got.Content, []byte("%PDF")))
		})
	}
}

func TestInvoiceApp_GenerateFromOrder(t *testing.T) {
	s := appinvoice.NewInvoiceApp(testConfig(), ordermocks.NewOrderRepository(t))

	tests := []struct {
		name    string
		order   *model.Order
		wantErr bool
	}{
		{name: "complete order", order: sampleOrder()},
		{name: "nil order", order: nil, wantErr: true},
		{name: "missing id", order: &model.Order{CustomerInfo: model.CustomerInfo{Name: "Budi"}}, wantErr: true},
		{name: "missing customer name", order: &model.Order{OrderID: "FW123456"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GenerateFromOrder(context.Background(), tt.order)
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("GenerateFromOrder() error = %v, want CustomError", err)
				}
				assert.Equal(t, constant.ErrorTypeCode[constant.ErrMissingFields], ce.ErrorCode())
				return
			}
			if err != nil {
				t.Fatalf("GenerateFromOrder() unexpected error = %v", err)
			}
			assert.Regexp(t, invoiceNamePattern, got.FileName)
			assert.NotEmpty(t, got.Content)
		})
	}
}

func TestFileName(t *testing.T) {
	at := issuedAt
	o := sampleOrder()
	o.CustomerInfo.Name = "  Siti  Nur Aisyah "
	assert.Equal(t, fmt.Sprintf("Invoice-Siti-Nur-Aisyah-FW123456-%d.pdf", at.UnixMilli()), appinvoice.FileName(o, at))

	o.CustomerInfo.Name = ""
	assert.Equal(t, fmt.Sprintf("Invoice-FW123456-%d.pdf", at.UnixMilli()), appinvoice.FileName(o, at))
}
