package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *fakeStore, blobStore *fakeBlob) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(newTestService(store, blobStore)).RegisterRoutes(router)
	return router
}

func decodeAction(t *testing.T, rec *httptest.ResponseRecorder) *ActionResponse {
	t.Helper()
	resp := &ActionResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), resp))
	return resp
}

func TestCreateProductEndpoint_Success(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, newFakeBlob())

	body, contentType := buildMultipartRequest(t, []formField{
		{fieldName, "Widget"},
		{fieldTags, "1"},
		{fieldSubProducts, `[{"name":"Red"}]`},
	}, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/", body)
	r.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAction(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Product created successfully", resp.Message)
	assert.Len(t, store.products, 1)
}

func TestCreateProductEndpoint_ValidationFailure(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeBlob())

	body, contentType := buildMultipartRequest(t, []formField{{fieldName, ""}}, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/", body)
	r.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeAction(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors["name"])
}

func TestUpdateProductEndpoint_MissingIDIsBadRequest(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeBlob())

	body, contentType := buildMultipartRequest(t, []formField{{fieldName, "Widget"}}, nil)
	r := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/", body)
	r.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeAction(t, rec)
	assert.Equal(t, "Product ID is required", resp.Message)
}

func TestDeleteProductEndpoint_IDFromQuery(t *testing.T) {
	store := newFakeStore()
	blobStore := newFakeBlob()
	router := newTestRouter(store, blobStore)

	body, contentType := buildMultipartRequest(t, []formField{{fieldName, "Widget"}}, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/", body)
	r.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/?product-id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAction(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, store.products)
}
