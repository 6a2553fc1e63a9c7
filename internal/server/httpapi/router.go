package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
)

// NewRouter wires every endpoint as POST only. Other methods on a known
// path get 405 from mux.
func NewRouter(h *Handler, l logging.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, accessLog(l))

	r.HandleFunc("/", h.Root).Methods(http.MethodPost)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/patients", h.Patients).Methods(http.MethodPost)
	r.HandleFunc("/pharmacies", h.Pharmacies).Methods(http.MethodPost)
	r.HandleFunc("/transactions", h.Transactions).Methods(http.MethodPost)

	return r
}
