package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/pocketbook/app"
	"github.com/rustyeddy/pocketbook/config"
	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/remote"
	"github.com/rustyeddy/pocketbook/render"
)

// env is what every data command works with.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store journal.Store
	state *app.State
	out   *render.Printer
}

// loadConfig reads the config file. A missing default file means defaults;
// a missing file named explicitly is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFromFile(cfgFile)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, err
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	lvl, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func openStore(cfg *config.Config) (journal.Store, error) {
	switch cfg.Store.Type {
	case config.StoreRemote:
		timeout, err := cfg.Store.ParseTimeout()
		if err != nil {
			return nil, fmt.Errorf("store timeout: %w", err)
		}
		return remote.NewClient(cfg.Store.URL, timeout), nil
	case config.StoreSQLite:
		return journal.NewSQLite(cfg.Store.DBPath)
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
}

// setup loads config, opens the store, fetches the dataset and selects the
// requested period.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	store, err := openStore(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &env{
		cfg:   cfg,
		log:   log,
		store: store,
		state: app.New(store, log, cfg.LedgerOptions()),
		out: render.NewPrinter(os.Stdout, render.Options{
			Currency: cfg.Display.Currency,
			Color:    cfg.Display.Color,
		}),
	}

	if err := e.state.Reload(cmd.Context()); err != nil {
		e.Close()
		return nil, fmt.Errorf("load records: %w", err)
	}
	if err := e.state.Select(periodFlag); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func (e *env) submit(ctx context.Context, m journal.Mutation) error {
	if err := e.state.Submit(ctx, m); err != nil {
		return fmt.Errorf("%s: %w", m.Action, err)
	}
	fmt.Printf("✓ %s %s\n", m.Action, m.ID)
	return nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}
