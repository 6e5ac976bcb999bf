package model

import (
	"time"

	"github.com/muhammadheryan/fw-development/constant"
)

type PaymentFlow struct {
	OrderID   string               `json:"orderId"`
	Step      constant.PaymentStep `json:"step"`
	StepName  string               `json:"stepName"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// ProofFile is an uploaded payment screenshot held in memory.
type ProofFile struct {
	OriginalName string
	ContentType  string
	Size         int64
	Content      []byte
}

type PaymentProofRequest struct {
	PaymentProof    *ProofFile
	CustomerPhone   string `validate:"required"`
	AdditionalNotes string
	OrderData       string `validate:"required"`
}

type EmailsSent struct {
	Business string `json:"business"`
	Customer string `json:"customer"`
}

type PaymentProofResponse struct {
	Success           bool        `json:"success"`
	Message           string      `json:"message"`
	OrderID           string      `json:"orderId"`
	FileName          string      `json:"fileName"`
	EmailsSent        *EmailsSent `json:"emailsSent,omitempty"`
	EmailError        string      `json:"emailError,omitempty"`
	EmailErrorDetails string      `json:"emailErrorDetails,omitempty"`
}

type PaymentInstructions struct {
	Method        string `json:"method"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
	AmountText    string `json:"amountText"`
	AmountInWords string `json:"amountInWords"`
}

type PaymentPageResponse struct {
	Order        *Order               `json:"order"`
	Flow         *PaymentFlow         `json:"flow"`
	Instructions *PaymentInstructions `json:"instructions"`
}

func NewPaymentFlow(orderID string, step constant.PaymentStep, at time.Time) *PaymentFlow {
	return &PaymentFlow{OrderID: orderID, Step: step, StepName: step.String(), UpdatedAt: at}
}
