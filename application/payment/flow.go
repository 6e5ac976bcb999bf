package payment

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
)

var validNext = map[constant.PaymentStep]map[constant.PaymentStep]bool{
	constant.PaymentStepInstructions: {constant.PaymentStepUploadProof: true},
	constant.PaymentStepUploadProof: {
		constant.PaymentStepInstructions: true,
		constant.PaymentStepConfirmed:    true,
	},
}

func CanTransition(from, to constant.PaymentStep) bool {
	return validNext[from][to]
}

// Submission is the proof form of the UploadProof step.
type Submission struct {
	Proof           *model.ProofFile
	CustomerPhone   string
	AdditionalNotes string
}

// SendFunc delivers an accepted submission. An error keeps the flow in UploadProof.
type SendFunc func(ctx context.Context, sub *Submission) error

// Flow is the three-step payment flow of one order: Instructions, UploadProof, Confirmed.
type Flow struct {
	OrderID      string
	Step         constant.PaymentStep
	Form         Submission
	MaxProofSize int64
}

func NewFlow(orderID string) *Flow {
	return &Flow{OrderID: orderID, Step: constant.PaymentStepInstructions}
}

func FlowFromModel(m *model.PaymentFlow) *Flow {
	return &Flow{OrderID: m.OrderID, Step: m.Step}
}

func (f *Flow) Model(at time.Time) *model.PaymentFlow {
	return model.NewPaymentFlow(f.OrderID, f.Step, at)
}

func (f *Flow) Acknowledge() error {
	return f.move(constant.PaymentStepUploadProof)
}

// Back returns to the instructions and clears the proof form.
func (f *Flow) Back() error {
	if err := f.move(constant.PaymentStepInstructions); err != nil {
		return err
	}
	f.Form = Submission{}
	return nil
}

// Submit checks the guard, then calls send. The step only advances when send succeeds; there is no retry.
func (f *Flow) Submit(ctx context.Context, sub *Submission, send SendFunc) error {
	if !CanTransition(f.Step, constant.PaymentStepConfirmed) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if sub == nil {
		return errors.SetCustomError(constant.ErrMissingFields)
	}
	f.Form = *sub

	if err := ValidateSubmission(sub, f.MaxProofSize); err != nil {
		return err
	}
	if err := send(ctx, sub); err != nil {
		return err
	}

	f.Step = constant.PaymentStepConfirmed
	f.Form = Submission{}
	return nil
}

func (f *Flow) move(to constant.PaymentStep) error {
	if !CanTransition(f.Step, to) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}
	f.Step = to
	return nil
}

// ValidateSubmission is the UploadProof guard. It records the sniffed content type on the proof.
func ValidateSubmission(sub *Submission, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = constant.MaxPaymentProofSize
	}
	if sub.Proof == nil || len(sub.Proof.Content) == 0 || strings.TrimSpace(sub.CustomerPhone) == "" {
		return errors.SetCustomError(constant.ErrMissingFields)
	}

	detected := mimetype.Detect(sub.Proof.Content)
	if !strings.HasPrefix(detected.String(), "image/") {
		return errors.SetCustomError(constant.ErrInvalidProofFile)
	}

	size := sub.Proof.Size
	if n := int64(len(sub.Proof.Content)); n > size {
		size = n
	}
	if size > maxSize {
		return errors.SetCustomError(constant.ErrProofTooLarge)
	}

	sub.Proof.ContentType = detected.String()
	return nil
}

// ProofExtension keeps the uploaded extension, falling back to the sniffed one.
func ProofExtension(p *model.ProofFile) string {
	if ext := strings.TrimPrefix(filepath.Ext(p.OriginalName), "."); ext != "" {
		return strings.ToLower(ext)
	}
	if detected := mimetype.Detect(p.Content); strings.HasPrefix(detected.String(), "image/") {
		if ext := strings.TrimPrefix(detected.Extension(), "."); ext != "" {
			return ext
		}
	}
	return constant.DefaultProofExt
}
