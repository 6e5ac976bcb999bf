package payment_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	apppayment "github.com/muhammadheryan/fw-development/application/payment"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	cerr "github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	jpegBytes = append([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 64)...)
	pdfBytes  = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
)

func pngProof() *model.ProofFile {
	return &model.ProofFile{OriginalName: "transfer.png", Size: int64(len(pngBytes)), Content: pngBytes}
}

func okSend(calls *int) apppayment.SendFunc {
	return func(ctx context.Context, sub *apppayment.Submission) error {
		*calls++
		return nil
	}
}

func TestCanTransition(t *testing.T) {
	steps := []constant.PaymentStep{constant.PaymentStepInstructions, constant.PaymentStepUploadProof, constant.PaymentStepConfirmed}
	allowed := map[[2]constant.PaymentStep]bool{
		{constant.PaymentStepInstructions, constant.PaymentStepUploadProof}: true,
		{constant.PaymentStepUploadProof, constant.PaymentStepInstructions}: true,
		{constant.PaymentStepUploadProof, constant.PaymentStepConfirmed}:    true,
	}
	for _, from := range steps {
		for _, to := range steps {
			assert.Equal(t, allowed[[2]constant.PaymentStep{from, to}], apppayment.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestFlow_HappyPath(t *testing.T) {
	f := apppayment.NewFlow("FW123456")
	assert.Equal(t, constant.PaymentStepInstructions, f.Step)

	require.NoError(t, f.Acknowledge())
	assert.Equal(t, constant.PaymentStepUploadProof, f.Step)

	calls := 0
	require.NoError(t, f.Submit(context.Background(), &apppayment.Submission{Proof: pngProof(), CustomerPhone: "0812"}, okSend(&calls)))
	assert.Equal(t, constant.PaymentStepConfirmed, f.Step)
	assert.Equal(t, 1, calls)

	m := f.Model(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "confirmed", m.StepName)
	assert.Equal(t, "FW123456", m.OrderID)
}

func TestFlow_BackResetsForm(t *testing.T) {
	f := apppayment.NewFlow("FW123456")
	require.NoError(t, f.Acknowledge())

	_ = f.Submit(context.Background(), &apppayment.Submission{CustomerPhone: "0812"}, okSend(new(int)))
	assert.Equal(t, "0812", f.Form.CustomerPhone)

	require.NoError(t, f.Back())
	assert.Equal(t, constant.PaymentStepInstructions, f.Step)
	assert.Equal(t, apppayment.Submission{}, f.Form)

	require.NoError(t, f.Acknowledge())
	assert.Equal(t, constant.PaymentStepUploadProof, f.Step)
}

func TestFlow_IllegalTransitions(t *testing.T) {
	f := apppayment.NewFlow("FW123456")
	assert.True(t, cerr.Is(f.Back(), constant.ErrInvalidTransition))

	calls := 0
	err := f.Submit(context.Background(), &apppayment.Submission{Proof: pngProof(), CustomerPhone: "0812"}, okSend(&calls))
	assert.True(t, cerr.Is(err, constant.ErrInvalidTransition))
	assert.Zero(t, calls)

	f.Step = constant.PaymentStepConfirmed
	assert.True(t, cerr.Is(f.Acknowledge(), constant.ErrInvalidTransition))
	assert.True(t, cerr.Is(f.Back(), constant.ErrInvalidTransition))
	err = f.Submit(context.Background(), &apppayment.Submission{Proof: pngProof(), CustomerPhone: "0812"}, okSend(&calls))
	assert.True(t, cerr.Is(err, constant.ErrInvalidTransition))
	assert.Equal(t, constant.PaymentStepConfirmed, f.Step)
}

func TestFlow_SubmitGuard(t *testing.T) {
	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, int(constant.MaxPaymentProofSize))...)

	tests := []struct {
		name    string
		sub     *apppayment.Submission
		errCode constant.ErrorType
	}{
		{name: "no file and no phone", sub: &apppayment.Submission{}, errCode: constant.ErrMissingFields},
		{name: "no file with phone", sub: &apppayment.Submission{CustomerPhone: "0812"}, errCode: constant.ErrMissingFields},
		{name: "no file with blank phone", sub: &apppayment.Submission{CustomerPhone: "   "}, errCode: constant.ErrMissingFields},
		{name: "empty file", sub: &apppayment.Submission{Proof: &model.ProofFile{OriginalName: "x.png"}, CustomerPhone: "0812"}, errCode: constant.ErrMissingFields},
		{name: "file without phone", sub: &apppayment.Submission{Proof: pngProof()}, errCode: constant.ErrMissingFields},
		{name: "nil submission", sub: nil, errCode: constant.ErrMissingFields},
		{name: "pdf is not an image", sub: &apppayment.Submission{Proof: &model.ProofFile{OriginalName: "proof.png", Content: pdfBytes}, CustomerPhone: "0812"}, errCode: constant.ErrInvalidProofFile},
		{name: "larger than five megabytes", sub: &apppayment.Submission{Proof: &model.ProofFile{OriginalName: "big.png", Content: big, Size: int64(len(big))}, CustomerPhone: "0812"}, errCode: constant.ErrProofTooLarge},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := &apppayment.Flow{OrderID: "FW123456", Step: constant.PaymentStepUploadProof}
			calls := 0

			err := f.Submit(context.Background(), tt.sub, okSend(&calls))
			if !cerr.Is(err, tt.errCode) {
				t.Fatalf("Submit() error = %v, want %s", err, constant.ErrorTypeCode[tt.errCode])
			}
			assert.Equal(t, constant.PaymentStepUploadProof, f.Step)
			assert.Zero(t, calls)
		})
	}
}

func TestFlow_SendFailureKeepsUploadStep(t *testing.T) {
	f := &apppayment.Flow{OrderID: "FW123456", Step: constant.PaymentStepUploadProof}
	sendErr := errors.New("network down")

	err := f.Submit(context.Background(), &apppayment.Submission{Proof: pngProof(), CustomerPhone: "0812"}, func(ctx context.Context, sub *apppayment.Submission) error {
		return sendErr
	})
	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, constant.PaymentStepUploadProof, f.Step)
	assert.Equal(t, "0812", f.Form.CustomerPhone)
}

func TestValidateSubmission_RecordsContentType(t *testing.T) {
	sub := &apppayment.Submission{Proof: &model.ProofFile{OriginalName: "a.jpg", Content: jpegBytes}, CustomerPhone: "0812"}
	require.NoError(t, apppayment.ValidateSubmission(sub, 0))
	assert.Equal(t, "image/jpeg", sub.Proof.ContentType)
}

func TestProofExtension(t *testing.T) {
	assert.Equal(t, "png", apppayment.ProofExtension(&model.ProofFile{OriginalName: "Bukti.PNG", Content: pngBytes}))
	assert.Equal(t, "jpg", apppayment.ProofExtension(&model.ProofFile{OriginalName: "bukti", Content: jpegBytes}))
	assert.Equal(t, "png", apppayment.ProofExtension(&model.ProofFile{Content: pngBytes}))
	assert.Equal(t, "jpg", apppayment.ProofExtension(&model.ProofFile{}))
}
