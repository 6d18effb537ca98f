package admin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the admin mutation endpoints. The product identifier
// travels in the form body (or query, for deletes), mirroring the admin form
// contract rather than the URL path.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/admin/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Put("/", h.updateProduct)
		r.Delete("/", h.deleteProduct)
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondWith(w, http.StatusBadRequest, &ActionResponse{Success: false, Message: "failed to parse form: " + err.Error()})
		return
	}
	respondAction(w, h.service.CreateProduct(r.Context(), form))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		respondWith(w, http.StatusBadRequest, &ActionResponse{Success: false, Message: "failed to parse form: " + err.Error()})
		return
	}
	respondAction(w, h.service.UpdateProduct(r.Context(), form))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue(fieldProductID)), 10, 64)
	respondAction(w, h.service.DeleteProduct(r.Context(), productID))
}

func respondAction(w http.ResponseWriter, resp *ActionResponse) {
	status := http.StatusOK
	switch {
	case resp.Success:
	case resp.Message == msgProductIDRequired:
		status = http.StatusBadRequest
	case resp.Errors != nil:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}
	respondWith(w, status, resp)
}

func respondWith(w http.ResponseWriter, status int, resp *ActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
