package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	NewHandler(NewService(testRepo())).RegisterRoutes(router)
	return router
}

func TestListProductsEndpoint_CommaSeparatedTags(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/?tags=labubu,blindbox", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body ProductListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Products, 2)
	assert.Len(t, body.Tags, 3)
}

func TestListProductsEndpoint_RepeatedTags(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/?tags=labubu&tags=blindbox", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body ProductListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Products, 2)
}

func TestGetProductEndpoint_NotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductEndpoint_InvalidID(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTagSlugParams(t *testing.T) {
	assert.Nil(t, tagSlugParams(nil))
	assert.Equal(t, []string{"a", "b", "c"}, tagSlugParams([]string{"a,b", "c"}))
	assert.Equal(t, []string{"a"}, tagSlugParams([]string{" a ", "", ","}))
}
