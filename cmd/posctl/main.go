package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	dashboardapp "github.com/dwikikusuma/shoping-pos/internal/dashboard/app"
	"github.com/dwikikusuma/shoping-pos/internal/platform"
	"github.com/dwikikusuma/shoping-pos/internal/receipt"
	"github.com/dwikikusuma/shoping-pos/pkg/config"
	"github.com/dwikikusuma/shoping-pos/pkg/logger"
	"github.com/dwikikusuma/shoping-pos/pkg/shutdown"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	app := &cli.App{
		Name:  "posctl",
		Usage: "administer the till's stored data",
		Commands: []*cli.Command{
			seedCommand(),
			productsCommand(),
			dashboardCommand(),
			receiptCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "posctl:", err)
		os.Exit(1)
	}
}

// withApp opens the configured store for the duration of one command.
func withApp(c *cli.Context, fn func(a *platform.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Service: "posctl",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Text:    true,
		Output:  os.Stderr,
	})

	a, err := platform.New(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			log.Warn("close store", slog.Any("err", err))
		}
	}()
	return fn(a)
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "overwrite products, customers and transactions with the demo dataset",
		Action: func(c *cli.Context) error {
			return withApp(c, func(a *platform.App) error {
				if err := a.Seed(c.Context); err != nil {
					return err
				}
				a.Log.Info("seeded", slog.String("driver", a.Config.Store.Driver))
				return nil
			})
		},
	}
}

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list products",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "name, barcode prefix or description"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "all"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(a *platform.App) error {
				products, err := a.Catalog.ListProducts(c.Context, c.String("search"), c.String("category"))
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tBARCODE")
				for _, p := range products {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, receipt.Baht(p.Price), p.Stock, p.Barcode)
				}
				return tw.Flush()
			})
		},
	}
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "print the sales summary as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "YYYY-MM-DD, inclusive"},
			&cli.StringFlag{Name: "to", Usage: "YYYY-MM-DD, exclusive"},
		},
		Action: func(c *cli.Context) error {
			var r dashboardapp.Range
			var err error
			if r.From, err = parseDay(c.String("from")); err != nil {
				return err
			}
			if r.To, err = parseDay(c.String("to")); err != nil {
				return err
			}

			return withApp(c, func(a *platform.App) error {
				sum, err := a.Dashboard.Summary(c.Context, r)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			})
		},
	}
}

func receiptCommand() *cli.Command {
	return &cli.Command{
		Name:      "receipt",
		Usage:     "render the HTML receipt of a transaction",
		ArgsUsage: "<transaction-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("receipt: transaction id is required", 2)
			}

			return withApp(c, func(a *platform.App) error {
				tx, err := a.Transactions.Get(c.Context, id)
				if err != nil {
					return err
				}
				opts := receipt.Options{ShopName: a.Config.ShopName}
				if tx.CustomerID != "" {
					if cust, err := a.Customers.Get(c.Context, tx.CustomerID); err == nil {
						opts.CustomerName = cust.Name
					}
				}

				var w io.Writer = c.App.Writer
				if path := c.String("out"); path != "" {
					f, err := os.Create(path)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return receipt.Render(w, tx, opts)
			})
		},
	}
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}
