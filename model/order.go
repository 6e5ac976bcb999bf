package model

import (
	"time"

	"github.com/muhammadheryan/fw-development/constant"
)

type CustomerInfo struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"required"`
	Company            string `json:"company,omitempty"`
	Address            string `json:"address,omitempty"`
	ProjectDescription string `json:"projectDescription,omitempty"`
	DomainName         string `json:"domainName,omitempty"`
}

type OrderServiceLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Hours int    `json:"hours,omitempty"`
}

type OrderAddOnLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Order is also the transit format carried in the orderData parameter.
type Order struct {
	OrderID      string             `json:"orderId"`
	Services     []OrderServiceLine `json:"services"`
	AddOns       []OrderAddOnLine   `json:"addOns"`
	CustomerInfo CustomerInfo       `json:"customerInfo"`
	Total        int64              `json:"total"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type CreateOrderRequest struct {
	ServiceIDs   []string     `json:"serviceIds" validate:"required,min=1,dive,required"`
	AddOnIDs     []string     `json:"addOnIds" validate:"dive,required"`
	CustomerInfo CustomerInfo `json:"customerInfo" validate:"required"`
}

type CreateOrderResponse struct {
	Order      *Order `json:"order"`
	OrderData  string `json:"orderData"`
	PaymentURL string `json:"paymentUrl"`
}

type OrderDetailResponse struct {
	Order  *Order               `json:"order"`
	Status constant.OrderStatus `json:"status"`
	Flow   *PaymentFlow         `json:"flow,omitempty"`
}
