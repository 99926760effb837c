package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/bookfinder/internal/config"
	"github.com/five82/bookfinder/internal/logging"
	"github.com/five82/bookfinder/internal/metrics"
	"github.com/five82/bookfinder/internal/openlibrary"
	"github.com/five82/bookfinder/internal/prefs"
	"github.com/five82/bookfinder/internal/search"
	"github.com/five82/bookfinder/internal/state"
	"github.com/five82/bookfinder/internal/ui"
)

// Options configure the bookfinder application. Non-empty values override
// the config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/bookfinder/prefs.toml
	LogLevel    string
	MetricsAddr string
}

// components is everything Run needs once startup has succeeded.
type components struct {
	cfg      config.Config
	logger   *zap.Logger
	workflow *search.Workflow
	covers   openlibrary.Covers
	theme    string
}

// Run boots the bookfinder TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	c, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = c.logger.Sync() }()

	metrics.Register()
	c.logger.Info("bookfinder starting",
		zap.String("search_url", c.cfg.SearchURL),
		zap.String("metrics_addr", c.cfg.MetricsAddr),
	)

	g, gctx := errgroup.WithContext(ctx)
	uiCtx, cancelUI := context.WithCancel(gctx)
	defer cancelUI()

	if addr := c.cfg.MetricsAddr; addr != "" {
		g.Go(func() error {
			return metrics.Serve(uiCtx, addr, c.logger.Named("metrics"))
		})
	}

	g.Go(func() error {
		defer cancelUI()
		return ui.Run(ui.Options{
			Context:   uiCtx,
			Workflow:  c.workflow,
			Covers:    c.covers,
			ThemeName: c.theme,
			PrefsPath: opts.PrefsPath,
			LogPath:   c.cfg.LogFile,
			Logger:    c.logger,
		})
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("bookfinder stopped", zap.Error(err))
		return err
	}
	c.logger.Info("bookfinder stopped")
	return nil
}

// setup loads configuration and preferences and wires the search stack.
func setup(opts Options) (components, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return components{}, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if addr := strings.TrimSpace(opts.MetricsAddr); addr != "" {
		cfg.MetricsAddr = addr
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return components{}, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load preferences failed, using defaults", zap.Error(err))
	}

	client, err := openlibrary.NewClient(openlibrary.Options{
		SearchURL:         cfg.SearchURL,
		UserAgent:         cfg.UserAgent,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
	if err != nil {
		return components{}, fmt.Errorf("init search client: %w", err)
	}

	session := &state.Session{}
	queries := search.NewQueryStore(session, prefs.QueryMemory{Path: opts.PrefsPath}, logger)

	return components{
		cfg:      cfg,
		logger:   logger,
		workflow: search.NewWorkflow(client, queries, session, logger),
		covers:   openlibrary.NewCovers(cfg.CoversURL),
		theme:    userPrefs.Theme,
	}, nil
}
