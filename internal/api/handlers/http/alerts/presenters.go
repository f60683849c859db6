package alerts

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"safezone/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	var (
		code = http.StatusInternalServerError
		msg  = "internal error"
	)
	switch {
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidUserID):
		code, msg = http.StatusBadRequest, "invalid input"
	case errors.Is(err, e.ErrNotFound):
		code, msg = http.StatusNotFound, "not found"
	}

	body := map[string]any{"success": false, "error": msg}
	if h.showDetails {
		body["details"] = err.Error()
	}
	h.writeJSON(w, code, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", slog.Any("error", err))
	}
}
