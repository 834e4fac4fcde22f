package status

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-console/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-console/pkg/app/http"
)

// HTTP serves the bridge status dashboard
type HTTP struct {
	service      Service
	native       NativeToken
	historyLimit int
	logger       *zap.Logger
}

// Response is the dashboard payload of one snapshot
type Response struct {
	FetchedAt time.Time     `json:"fetchedAt"`
	View      View          `json:"view"`
	Raw       *BridgeStatus `json:"raw,omitempty"`
}

// HistoryEntry is a summarized past snapshot
type HistoryEntry struct {
	ID        int64     `json:"id"`
	FetchedAt time.Time `json:"fetchedAt"`
	Summary   Summary   `json:"summary"`
}

// RegisterRoutes registers the status endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, native NativeToken, historyLimit int, logger *zap.Logger) {
	h := &HTTP{
		service:      service,
		native:       native,
		historyLimit: historyLimit,
		logger:       logger,
	}

	r.Get("/api/status", apphttp.HandleErrorWithLogger(h.latest, logger))
	r.Post("/api/status/refresh", apphttp.HandleErrorWithLogger(h.refresh, logger))
	r.Get("/api/status/history", apphttp.HandleErrorWithLogger(h.history, logger))
}

func (h *HTTP) latest(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.service.Latest(r.Context())
	if errors.Is(err, ErrNoSnapshot) {
		return apperrors.UnavailableError(err, "bridge status not available yet")
	}
	if err != nil {
		return apperrors.GeneralError(err)
	}

	apphttp.WriteJSON(w, http.StatusOK, h.response(snap, isDiagnostic(r)))
	return nil
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.service.Refresh(r.Context())
	if err != nil {
		return apperrors.DependencyError(err, "failed to fetch bridge status")
	}

	apphttp.WriteJSON(w, http.StatusOK, h.response(snap, isDiagnostic(r)))
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		if h.historyLimit <= 0 || n < h.historyLimit {
			limit = n
		}
	}

	snaps, err := h.service.History(r.Context(), limit)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	out := make([]HistoryEntry, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, HistoryEntry{ID: s.ID, FetchedAt: s.FetchedAt, Summary: s.Status.Summary})
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) response(snap *Snapshot, diagnostic bool) Response {
	resp := Response{
		FetchedAt: snap.FetchedAt,
		View:      Render(&snap.Status, h.native, diagnostic),
	}
	if diagnostic {
		resp.Raw = &snap.Status
	}
	return resp
}

func isDiagnostic(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("diagnostic"))
	return err == nil && v
}
