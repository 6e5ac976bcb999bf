package context

import (
	"context"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
)

func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, session)
}

func GetSession(ctx context.Context) (*model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*model.Session)
	return s, ok
}
