package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

// writeError maps a CustomError to its HTTP status; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unmapped error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Error: ce.Error(),
		Code:  ce.ErrorCode(),
	})
}

func writePDF(w http.ResponseWriter, file *model.InvoiceFile) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", fmt.Sprint(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		logger.Warn("[writePDF] write response", zap.String("file", file.FileName), zap.String("error", err.Error()))
	}
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrMethodNotAllowed))
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrNotFound))
}
