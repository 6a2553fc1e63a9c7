package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gsbevilaqua83/private-rest-api/internal/common"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/services"
)

// Endpoints is the list returned by the root endpoint after a successful login.
var Endpoints = []string{"/patients", "/pharmacies", "/transactions"}

type Authenticator interface {
	Login(ctx context.Context, p services.Payload) (*models.User, error)
}

type Registrar interface {
	Register(ctx context.Context, p services.Payload) (*models.User, error)
}

type Catalog interface {
	Patients(ctx context.Context, params url.Values) ([]models.Patient, error)
	Pharmacies(ctx context.Context, params url.Values) ([]models.Pharmacy, error)
	Transactions(ctx context.Context, params url.Values) ([]models.Transaction, error)
}

type Handler struct {
	auth         Authenticator
	registration Registrar
	catalog      Catalog
	logger       logging.Logger
}

func NewHandler(a Authenticator, r Registrar, c Catalog, l logging.Logger) *Handler {
	return &Handler{
		auth:         a,
		registration: r,
		catalog:      c,
		logger:       l.With("module", "httpapi"),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.auth.Login(ctx, decodePayload(w, r)); err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, map[string][]string{"endpoints": Endpoints})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.registration.Register(ctx, decodePayload(w, r))
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.logger.Info(ctx, "Registered", "id", u.ID, "username", u.UserName, "role", u.Role)
	h.writeJSON(ctx, w, http.StatusOK, map[string]string{"success": services.RegistrationSuccessful})
}

func (h *Handler) Patients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.auth.Login(ctx, decodePayload(w, r)); err != nil {
		h.fail(ctx, w, err)
		return
	}

	rows, err := h.catalog.Patients(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, mapViews(rows, newPatientView))
}

func (h *Handler) Pharmacies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.auth.Login(ctx, decodePayload(w, r)); err != nil {
		h.fail(ctx, w, err)
		return
	}

	rows, err := h.catalog.Pharmacies(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, mapViews(rows, newPharmacyView))
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.auth.Login(ctx, decodePayload(w, r)); err != nil {
		h.fail(ctx, w, err)
		return
	}

	rows, err := h.catalog.Transactions(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, mapViews(rows, newTransactionView))
}

// fail answers client errors with 200 and their message; anything else is
// logged and hidden behind a 500.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	if reqErr, ok := common.RequestError(err); ok {
		h.writeJSON(ctx, w, http.StatusOK, map[string]string{"error": reqErr.Error()})
		return
	}

	h.logger.Error(ctx, "request failed", "error", err)
	h.writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": common.ErrorInternal.Error()})
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn(ctx, "write response", "error", err)
	}
}
