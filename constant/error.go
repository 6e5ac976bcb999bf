package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrMethodNotAllowed
	ErrMissingFields
	ErrUnknownItem
	ErrInvalidProofFile
	ErrProofTooLarge
	ErrInvalidTransition
	ErrInvalidOrderStatus
	ErrContactRelay
	ErrPaymentProofSubmit
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrInvalidPassword:    "password invalid",
	ErrMethodNotAllowed:   "Method not allowed",
	ErrMissingFields:      "Missing required fields",
	ErrUnknownItem:        "unknown service or add-on",
	ErrInvalidProofFile:   "Please upload an image file (JPG, PNG, etc.)",
	ErrProofTooLarge:      "File size must be less than 5MB",
	ErrInvalidTransition:  "payment step not allowed",
	ErrInvalidOrderStatus: "invalid order status",
	ErrContactRelay:       "Failed to send email. Please try again later.",
	ErrPaymentProofSubmit: "Failed to submit payment proof. Please try again later.",
	ErrForbidden:          "Forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrMissingFields:      http.StatusBadRequest,
	ErrUnknownItem:        http.StatusBadRequest,
	ErrInvalidProofFile:   http.StatusBadRequest,
	ErrProofTooLarge:      http.StatusBadRequest,
	ErrInvalidTransition:  http.StatusConflict,
	ErrInvalidOrderStatus: http.StatusConflict,
	ErrContactRelay:       http.StatusInternalServerError,
	ErrPaymentProofSubmit: http.StatusInternalServerError,
	ErrForbidden:          http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrInvalidPassword:    "0005",
	ErrMethodNotAllowed:   "0006",
	ErrMissingFields:      "0007",
	ErrUnknownItem:        "0008",
	ErrInvalidProofFile:   "0009",
	ErrProofTooLarge:      "0010",
	ErrInvalidTransition:  "0011",
	ErrInvalidOrderStatus: "0012",
	ErrContactRelay:       "0013",
	ErrPaymentProofSubmit: "0014",
	ErrForbidden:          "0015",
}
