package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

// InternalMiddleware checks for static API key in header. An empty key locks the routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+apiKey)) != 1 {
				logger.Warn("[InternalMiddleware] forbidden", zap.String("path", r.URL.Path), zap.String("caller", r.Header.Get("X-Internal-Service")))
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
