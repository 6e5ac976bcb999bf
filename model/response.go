package model

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type StatusMessage struct {
	Message string `json:"message"`
}

type StatusUpdateResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
