package alerts

import (
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"safezone/internal/domain"
	"safezone/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertSender interface {
	SendAlert(ctx context.Context, who domain.Identity, req domain.SendAlertRequest) (*domain.AlertResult, error)
}

type Handler struct {
	logger      *slog.Logger
	Alerts      AlertSender
	showDetails bool
}

func NewHandler(logger *slog.Logger, alerts AlertSender, showDetails bool) *Handler {
	return &Handler{
		logger:      logger,
		Alerts:      alerts,
		showDetails: showDetails,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AlertSend always answers 200 once the fan-out ran, including when every
// SMS failed; the body carries the per-contact outcome.
func (h *Handler) AlertSend(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertSend", slog.String("remote", r.RemoteAddr))

	who, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
		return
	}

	var req domain.SendAlertRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("sending alert",
		slog.String("user_id", who.UserID),
		slog.Int("contacts", len(req.ContactIDs)),
	)

	res, err := h.Alerts.SendAlert(r.Context(), who, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert finished",
		slog.Bool("success", res.Success),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
	)
	h.writeJSON(w, http.StatusOK, res)
}
