package platform

import (
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	carttransport "github.com/dwikikusuma/shoping-pos/internal/cart/transport"
	catalogtransport "github.com/dwikikusuma/shoping-pos/internal/catalog/transport"
	checkouttransport "github.com/dwikikusuma/shoping-pos/internal/checkout/transport"
	customertransport "github.com/dwikikusuma/shoping-pos/internal/customer/transport"
	dashboardtransport "github.com/dwikikusuma/shoping-pos/internal/dashboard/transport"
	"github.com/dwikikusuma/shoping-pos/internal/notice"
	txtransport "github.com/dwikikusuma/shoping-pos/internal/transaction/transport"
	"github.com/dwikikusuma/shoping-pos/pkg/httpx"
)

const apiPrefix = "/api/v1"

func (a *App) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(httpx.LogRequests(a.Log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.HandleFunc("/readyz", httpx.Handle(a.Log, a.readyz))

	api := r.PathPrefix(apiPrefix).Subrouter()
	catalogtransport.NewHandler(a.Catalog, a.Log).Register(api)
	carttransport.NewHandler(a.Cart, a.Log).Register(api)
	checkouttransport.NewHandler(a.Checkout, a.Log).Register(api)
	customertransport.NewHandler(a.Customers, a.Log).Register(api)
	txtransport.NewHandler(a.Transactions, customertransport.Names{Svc: a.Customers}, a.Config.ShopName, a.Log).Register(api)
	dashboardtransport.NewHandler(a.Dashboard, a.Log).Register(api)
	api.HandleFunc("/notices", httpx.Handle(a.Log, a.notices)).Methods(http.MethodGet)

	r.NotFoundHandler = httpx.Handle(a.Log, func(http.ResponseWriter, *http.Request) error {
		return status.Error(codes.NotFound, "no such route")
	})
	return r
}

func (a *App) readyz(w http.ResponseWriter, r *http.Request) error {
	if err := a.Ready(r.Context()); err != nil {
		return status.Errorf(codes.Unavailable, "store not ready: %v", err)
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

func (a *App) notices(w http.ResponseWriter, r *http.Request) error {
	limit, err := httpx.QueryInt(r, "limit", 20)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]notice.Notice{"notices": a.Notices.Recent(limit)})
	return nil
}
