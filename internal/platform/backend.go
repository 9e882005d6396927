package platform

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/dwikikusuma/shoping-pos/pkg/config"
	"github.com/dwikikusuma/shoping-pos/pkg/postgres"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
	"github.com/dwikikusuma/shoping-pos/pkg/store/storemongo"
	"github.com/dwikikusuma/shoping-pos/pkg/store/storepg"
)

type closeFunc func(ctx context.Context) error

func nopClose(context.Context) error { return nil }

// OpenBackend connects the storage driver named by cfg.Store.Driver.
func OpenBackend(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Backend, closeFunc, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on exit")
		return store.NewMemory(), nopClose, nil

	case config.DriverFile:
		b, err := store.NewFileBackend(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using file store", slog.String("dir", b.Dir()))
		return b, nopClose, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, postgres.Config{
			Host:    cfg.Postgres.Host,
			Port:    cfg.Postgres.Port,
			User:    cfg.Postgres.User,
			Pass:    cfg.Postgres.Password,
			DB:      cfg.Postgres.DB,
			SSLMode: cfg.Postgres.SSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		b := storepg.New(db)
		if err := b.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("using postgres store", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.DB))
		return b, func(context.Context) error { return db.Close() }, nil

	case config.DriverMongo:
		client, err := storemongo.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using mongo store", slog.String("db", cfg.Mongo.DB))
		return storemongo.New(client.Database(cfg.Mongo.DB)), client.Disconnect, nil
	}
	return nil, nil, errors.Errorf("unknown store driver %q", cfg.Store.Driver)
}
