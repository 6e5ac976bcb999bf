package constant

const (
	// session:{jti} -> model.Session json
	KeySession = "session:%s"

	// order:{order_id} -> model.Order json
	KeyOrder = "order:%s"

	// order_flow:{order_id} -> model.PaymentFlow json
	KeyOrderFlow = "order_flow:%s"

	// order_status:{order_id} -> constant.OrderStatus
	KeyOrderStatus = "order_status:%s"
)

const (
	EventOrderCreated          = "order.created"
	EventPaymentProofSubmitted = "payment_proof.submitted"
)
