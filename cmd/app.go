package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/zjrosen/spacetraders/internal/client"
	"github.com/zjrosen/spacetraders/internal/config"
	"github.com/zjrosen/spacetraders/internal/infrastructure/sqlite"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/presentation"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/tracing"
)

// app is everything one command invocation needs.
type app struct {
	cfg        config.Config
	configPath string
	client     *client.Client
	ledger     ledger.Repository // nil when the ledger is disabled
	out        *presentation.Formatter
	closers    []func() error
}

func newApp(cfg config.Config, configPath string, w io.Writer, format presentation.Format) (_ *app, err error) {
	a := &app{
		cfg:        cfg,
		configPath: configPath,
		out:        presentation.NewFormatter(w, format),
	}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	opts := []client.Option{
		client.WithBaseURL(cfg.API.BaseURL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		client.WithLookupCache(cfg.Lookup.TTL),
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("starting tracing: %w", err)
	}
	a.closers = append(a.closers, func() error { return provider.Shutdown(context.Background()) })
	if provider.Enabled() {
		opts = append(opts, client.WithTracer(provider.Tracer()))
	}

	if cfg.Ledger.Enabled {
		db, err := sqlite.NewDB(cfg.Ledger.Path)
		if err != nil {
			return nil, fmt.Errorf("opening ledger: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.ledger = db.LedgerRepository()
		opts = append(opts, client.WithLedger(a.ledger))
	}

	broker := pubsub.NewBroker[client.CacheChange]()
	ctx, cancel := context.WithCancel(context.Background())
	changes := broker.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range changes {
			log.Debug(log.CatCache, "session changed", "seq", ev.Seq, "event", ev.Type, "kind", ev.Payload.Kind,
				"ship", ev.Payload.Ship, "contract", ev.Payload.Contract, "credits", ev.Payload.Credits)
		}
	}()
	a.closers = append(a.closers, func() error {
		cancel()
		broker.Close()
		<-done
		if n := broker.Dropped(); n > 0 {
			log.Warn(log.CatCache, "session change events dropped", "count", n)
		}
		return nil
	})
	opts = append(opts, client.WithEvents(broker))

	a.client, err = client.New(opts...)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// load restores the saved session. A missing save file gets a hint.
func (a *app) load() error {
	err := a.client.LoadSaved(a.cfg.SaveFile)
	var saveErr *session.SaveFileError
	if errors.As(err, &saveErr) && saveErr.Kind == session.SaveMissing {
		return fmt.Errorf("no saved session at %s; run 'spacetraders register' first: %w", a.cfg.SaveFile, err)
	}
	return err
}

func (a *app) save() error {
	return a.client.Save(a.cfg.SaveFile)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
