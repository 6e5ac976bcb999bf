package constant

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProofSubmitted OrderStatus = "proof_submitted"
	OrderStatusVerified       OrderStatus = "verified"
)

const (
	DefaultOrderIDPrefix = "FW"
	DefaultOrderTTL      = 7 * 24 * time.Hour

	// AddOnDomain is the add-on that makes CustomerInfo.DomainName meaningful.
	AddOnDomain = "domain"
)
