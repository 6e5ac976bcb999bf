package order

import (
	"fmt"
	"time"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

type BuildOptions struct {
	IDPrefix string
	Now      time.Time
	// Strict rejects ids missing from the catalog instead of pricing them at zero.
	Strict bool
}

// BuildOrder prices the selection against the catalog. Repeated ids are kept once, in first-seen order.
func BuildOrder(serviceIDs, addOnIDs []string, info model.CustomerInfo, catalog *model.Catalog, opts BuildOptions) (*model.Order, error) {
	if catalog == nil {
		catalog = &model.Catalog{}
	}

	services := make([]model.OrderServiceLine, 0, len(serviceIDs))
	var total int64
	for _, id := range dedupe(serviceIDs) {
		item, ok := catalog.Service(id)
		if !ok {
			if opts.Strict {
				return nil, errors.SetCustomErrorDetail(constant.ErrUnknownItem, fmt.Sprintf("unknown service %q", id))
			}
			logger.Warn("[BuildOrder] unknown service id", zap.String("id", id))
			item = model.ServiceItem{ID: id, Name: id}
		}
		services = append(services, model.OrderServiceLine{ID: item.ID, Name: item.Name, Price: item.Price, Hours: item.Hours})
		total += item.Price
	}

	addOns := make([]model.OrderAddOnLine, 0, len(addOnIDs))
	hasDomain := false
	for _, id := range dedupe(addOnIDs) {
		item, ok := catalog.AddOn(id)
		if !ok {
			if opts.Strict {
				return nil, errors.SetCustomErrorDetail(constant.ErrUnknownItem, fmt.Sprintf("unknown add-on %q", id))
			}
			logger.Warn("[BuildOrder] unknown add-on id", zap.String("id", id))
			item = model.AddOnItem{ID: id, Name: id}
		}
		if id == constant.AddOnDomain {
			hasDomain = true
		}
		addOns = append(addOns, model.OrderAddOnLine{ID: item.ID, Name: item.Name, Price: item.Price})
		total += item.Price
	}

	if !hasDomain {
		info.DomainName = ""
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &model.Order{
		OrderID:      NewOrderID(opts.IDPrefix, now),
		Services:     services,
		AddOns:       addOns,
		CustomerInfo: info,
		Total:        total,
		CreatedAt:    now,
	}, nil
}

// NewOrderID is prefix + the last six digits of the Unix millisecond clock. Collisions are possible.
func NewOrderID(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = constant.DefaultOrderIDPrefix
	}
	ms := now.UnixMilli() % 1000000
	if ms < 0 {
		ms = -ms
	}
	return fmt.Sprintf("%s%06d", prefix, ms)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
