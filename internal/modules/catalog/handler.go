package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
	})
}

// ProductListing is the read-path response body.
type ProductListing struct {
	Products []*Product `json:"products"`
	Tags     []*Tag     `json:"tags"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	slugs := tagSlugParams(r.URL.Query()["tags"])
	products, tags, err := h.service.ListProducts(r.Context(), slugs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, ProductListing{Products: products, Tags: tags})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	product, tags, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, struct {
		Product *Product `json:"product"`
		Tags    []*Tag   `json:"tags"`
	}{product, tags})
}

// tagSlugParams normalizes the tags query parameter, accepted both repeated
// (?tags=a&tags=b) and comma-separated (?tags=a,b).
func tagSlugParams(values []string) []string {
	var slugs []string
	for _, v := range values {
		for _, slug := range strings.Split(v, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				slugs = append(slugs, slug)
			}
		}
	}
	return slugs
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
