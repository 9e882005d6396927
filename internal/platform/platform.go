// Package platform assembles the till from configuration: storage, services
// and the HTTP router shared by the gateway and posctl.
package platform

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/dwikikusuma/shoping-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/shoping-pos/internal/catalog/app"
	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	catalogrepo "github.com/dwikikusuma/shoping-pos/internal/catalog/infra/storerepo"
	checkoutapp "github.com/dwikikusuma/shoping-pos/internal/checkout/app"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/infra/payment"
	customerapp "github.com/dwikikusuma/shoping-pos/internal/customer/app"
	customer "github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	customerrepo "github.com/dwikikusuma/shoping-pos/internal/customer/infra/storerepo"
	dashboardapp "github.com/dwikikusuma/shoping-pos/internal/dashboard/app"
	"github.com/dwikikusuma/shoping-pos/internal/notice"
	"github.com/dwikikusuma/shoping-pos/internal/seed"
	txapp "github.com/dwikikusuma/shoping-pos/internal/transaction/app"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
	txrepo "github.com/dwikikusuma/shoping-pos/internal/transaction/infra/storerepo"
	"github.com/dwikikusuma/shoping-pos/pkg/config"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

type App struct {
	Config config.Config
	Log    *slog.Logger

	Notices      *notice.Hub
	Catalog      *catalogapp.Service
	Cart         *cartapp.Service
	Customers    *customerapp.Service
	Transactions *txapp.Service
	Checkout     *checkoutapp.Coordinator
	Dashboard    *dashboardapp.Service

	backend      store.Backend
	products     *store.Store[catalog.Product]
	customers    *store.Store[customer.Customer]
	transactions *store.Store[txdomain.Transaction]
	close        closeFunc
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	backend, closer, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return Assemble(cfg, backend, log, closer), nil
}

// Assemble wires services over an already opened backend.
func Assemble(cfg config.Config, backend store.Backend, log *slog.Logger, closer closeFunc) *App {
	if closer == nil {
		closer = nopClose
	}
	a := &App{
		Config:       cfg,
		Log:          log,
		Notices:      notice.NewHub(),
		backend:      backend,
		products:     store.New(backend, store.KeyProducts, seed.Products, log),
		customers:    store.New(backend, store.KeyCustomers, seed.Customers, log),
		transactions: store.New(backend, store.KeyTransactions, seed.Transactions, log),
		close:        closer,
	}

	a.Catalog = catalogapp.NewService(catalogrepo.NewProductRepo(a.products))
	a.Customers = customerapp.NewService(customerrepo.NewCustomerRepo(a.customers))
	a.Transactions = txapp.NewService(txrepo.NewTransactionRepo(a.transactions))
	a.Cart = cartapp.NewService(a.Catalog, a.Notices, log.With(slog.String("component", "cart")))

	catalogAdapter := adapter.NewCatalogServiceReader(a.Catalog)
	a.Checkout = checkoutapp.NewCoordinator(checkoutapp.Deps{
		Cart:         adapter.NewCartServiceReader(a.Cart),
		Catalog:      catalogAdapter,
		Payments:     payment.NewSimulated(cfg.Payment.Delay),
		Transactions: adapter.NewTransactionRecorder(a.Transactions),
		Notify:       a.Notices,
		Stock:        catalogAdapter,
		Customers:    adapter.NewCustomerDirectory(a.Customers),
		Log:          log.With(slog.String("component", "checkout")),
	}, checkoutapp.Options{DecrementStock: cfg.DecrementStock, PaymentTimeout: cfg.Payment.Timeout})
	a.Cart.LockDuringPayment(a.Checkout)

	a.Dashboard = dashboardapp.NewService(a.Transactions, a.Catalog, a.Customers, cfg.LowStockThreshold)
	return a
}

// Seed overwrites every key with the default dataset.
func (a *App) Seed(ctx context.Context) error {
	return errors.Join(
		a.products.Save(ctx, seed.Products()),
		a.customers.Save(ctx, seed.Customers()),
		a.transactions.Save(ctx, seed.Transactions()),
	)
}

// Watch follows writes made by other processes sharing the backend, such as
// posctl or a second gateway, until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	period := a.Config.Store.WatchPeriod

	unsubscribe := []func(){
		a.products.SubscribeRemote(func([]catalog.Product) {
			a.Notices.Info("Products were updated by another till")
		}),
		a.customers.SubscribeRemote(func([]customer.Customer) {
			a.Notices.Info("Customers were updated by another till")
		}),
		a.transactions.SubscribeRemote(func([]txdomain.Transaction) {
			a.Notices.Info("Transactions were updated by another till")
		}),
	}
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.products.Watch(ctx, period) })
	g.Go(func() error { return a.customers.Watch(ctx, period) })
	g.Go(func() error { return a.transactions.Watch(ctx, period) })
	return g.Wait()
}

// Ready reports whether the backend answers.
func (a *App) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := a.backend.Get(ctx, store.KeyProducts)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (a *App) Close(ctx context.Context) error {
	return a.close(ctx)
}
