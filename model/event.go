package model

import "time"

type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"orderId"`
	Total         int64     `json:"total"`
	CustomerEmail string    `json:"customerEmail"`
	OccurredAt    time.Time `json:"occurredAt"`
}
