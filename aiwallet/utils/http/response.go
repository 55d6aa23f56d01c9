package httputils

import (
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an ErrorResponse for err. Server-side failures are
// logged with their cause and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperr.Status(err)
	resp := types.ErrorResponse{Message: msg}
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}
	if status >= http.StatusInternalServerError {
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("trace_id", logging.TraceID(r.Context())),
			zap.Error(err),
		)
	}
	WriteJSON(w, status, resp)
}
