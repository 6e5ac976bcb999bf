package constant

type PaymentStep int

const (
	PaymentStepInstructions PaymentStep = 1
	PaymentStepUploadProof  PaymentStep = 2
	PaymentStepConfirmed    PaymentStep = 3
)

var PaymentStepName = map[PaymentStep]string{
	PaymentStepInstructions: "instructions",
	PaymentStepUploadProof:  "upload_proof",
	PaymentStepConfirmed:    "confirmed",
}

func (s PaymentStep) String() string {
	if name, ok := PaymentStepName[s]; ok {
		return name
	}
	return "unknown"
}

const (
	MaxPaymentProofSize int64 = 5 * 1024 * 1024
	DefaultProofExt           = "jpg"
	DefaultProofMIME          = "image/jpeg"
)
