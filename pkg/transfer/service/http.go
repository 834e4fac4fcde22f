package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-console/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-console/pkg/app/http"
	"github.com/chainsafe/bridge-console/pkg/route"
	"github.com/chainsafe/bridge-console/pkg/transfer"
)

// maxAttemptsLimit bounds the attempts returned per request
const maxAttemptsLimit = 100

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the transfer form endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/locations", apphttp.HandleError(h.locations))
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.openSession))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", apphttp.HandleError(h.getSession))
			r.Patch("/", apphttp.HandleError(h.updateSession))
			r.Delete("/", apphttp.HandleError(h.closeSession))
			r.Post("/beneficiaries", apphttp.HandleError(h.beneficiaries))
			r.Post("/submit", apphttp.HandleError(h.submit))
			r.Get("/attempts", apphttp.HandleError(h.attempts))
		})
	})
}

func (h *HTTP) locations(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Locations(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) openSession(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.OpenSession(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) getSession(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) updateSession(w http.ResponseWriter, r *http.Request) error {
	var change transfer.FieldChange
	if err := apphttp.DecodeJSON(r, &change); err != nil {
		return err
	}

	resp, err := h.service.UpdateSession(r.Context(), chi.URLParam(r, "id"), change)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) closeSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) beneficiaries(w http.ResponseWriter, r *http.Request) error {
	var wallets route.Wallets
	if err := apphttp.DecodeJSON(r, &wallets); err != nil {
		return err
	}

	resp, err := h.service.Beneficiaries(r.Context(), chi.URLParam(r, "id"), wallets)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) submit(w http.ResponseWriter, r *http.Request) error {
	var req transfer.SubmitRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) attempts(w http.ResponseWriter, r *http.Request) error {
	limit := maxAttemptsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		limit = min(n, maxAttemptsLimit)
	}

	resp, err := h.service.Attempts(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
