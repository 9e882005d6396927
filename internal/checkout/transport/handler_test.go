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

	"github.com/dwikikusuma/shoping-pos/internal/checkout/app"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/infra/payment"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/logger"
)

type oneLineCart struct{ lines []domain.Line }

func (c *oneLineCart) GetCart(context.Context) ([]domain.Line, error) { return c.lines, nil }
func (c *oneLineCart) ClearCart(context.Context) error               { c.lines = nil; return nil }

type anyProduct struct{}

func (anyProduct) GetProduct(_ context.Context, id string) (app.Product, error) {
	return app.Product{ID: id, Stock: 10}, nil
}

type echoRecorder struct{}

func (echoRecorder) Record(_ context.Context, s domain.Sale) (txdomain.Transaction, error) {
	return txdomain.Transaction{ID: "tx-1", Amount: s.Total(), PaymentMethod: s.PaymentMethod, Status: txdomain.StatusCompleted}, nil
}

type quiet struct{}

func (quiet) Success(string) {}
func (quiet) Warn(string)    {}

func newRouter(cart *oneLineCart) http.Handler {
	log := logger.Discard()
	co := app.NewCoordinator(app.Deps{
		Cart:         cart,
		Catalog:      anyProduct{},
		Payments:     payment.NewSimulated(0),
		Transactions: echoRecorder{},
		Notify:       quiet{},
		Log:          log,
	}, app.Options{})
	r := mux.NewRouter()
	NewHandler(co, log).Register(r)
	return r
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestCheckoutFlow(t *testing.T) {
	cart := &oneLineCart{}
	h := newRouter(cart)

	rec := post(h, "/checkout/open", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = post(h, "/checkout/confirm", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "not confirming yet")

	cart.lines = []domain.Line{{ProductID: "p", Name: "Tea", UnitPrice: decimal.NewFromInt(25), Quantity: 4}}

	rec = post(h, "/checkout/open", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var v struct {
		State string        `json:"state"`
		Quote *domain.Quote `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "confirming", v.State)
	require.NotNil(t, v.Quote)
	assert.True(t, v.Quote.Total.Equal(decimal.NewFromInt(100)))

	rec = post(h, "/checkout/confirm", `{"payment_method":"bitcoin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(h, "/checkout/confirm", `{"payment_method":"card"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "tx-1", receipt.Transaction.ID)
	assert.Equal(t, txdomain.PaymentCard, receipt.Transaction.PaymentMethod)
	assert.Empty(t, cart.lines)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout", nil))
	assert.Contains(t, rec.Body.String(), `"state":"succeeded"`)
	assert.Contains(t, rec.Body.String(), `"last_receipt"`)
}

func TestCancel(t *testing.T) {
	cart := &oneLineCart{lines: []domain.Line{{ProductID: "p", UnitPrice: decimal.NewFromInt(1), Quantity: 1}}}
	h := newRouter(cart)

	require.Equal(t, http.StatusOK, post(h, "/checkout/open", "").Code)
	rec := post(h, "/checkout/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
	assert.Len(t, cart.lines, 1)
}
