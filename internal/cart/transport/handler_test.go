package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shoping-pos/internal/catalog/app"
	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/logger"
)

type stubCatalog struct{}

func (stubCatalog) GetProduct(_ context.Context, id string) (catalog.Product, error) {
	if id != "p1" {
		return catalog.Product{}, catalogapp.ErrNotFound
	}
	return catalog.Product{ID: "p1", Name: "Pad Thai", Price: decimal.NewFromInt(80), Stock: 1}, nil
}

type nopNotifier struct{}

func (nopNotifier) Warn(string) {}

func newRouter() http.Handler {
	log := logger.Discard()
	r := mux.NewRouter()
	NewHandler(app.NewService(stubCatalog{}, nopNotifier{}, log), log).Register(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestCartEndpoints(t *testing.T) {
	h := newRouter()

	rec, body := do(t, h, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["lines"])

	rec, body = do(t, h, http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["item_count"])
	assert.Equal(t, "80", body["total"])

	rec, body = do(t, h, http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "FAILED_PRECONDITION", body["error"].(map[string]any)["code"])

	rec, _ = do(t, h, http.MethodPost, "/cart/items", `{"product_id":"zzz"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/cart/items/p1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = do(t, h, http.MethodPut, "/cart/items/p1", `{"qty":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, body["line_count"])
}
