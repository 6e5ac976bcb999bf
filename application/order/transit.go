package order

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
)

// EncodeTransit renders the order as the URL-escaped JSON carried by the orderData parameter.
func EncodeTransit(order *model.Order) (string, error) {
	b, err := json.Marshal(order)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(b)), nil
}

// DecodeTransit accepts both the escaped form and raw JSON (multipart fields and already-decoded query values).
func DecodeTransit(text string) (*model.Order, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if !strings.HasPrefix(text, "{") {
		unescaped, err := url.QueryUnescape(text)
		if err != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "orderData is not valid")
		}
		text = unescaped
	}

	var o model.Order
	if err := json.Unmarshal([]byte(text), &o); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "orderData is not valid")
	}
	if o.OrderID == "" {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "orderData has no orderId")
	}
	return &o, nil
}
