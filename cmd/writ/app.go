package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/writ/config"
	"github.com/wippyai/writ/export"
	"github.com/wippyai/writ/records"
)

// app is the state every command builds from the shared flags.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	engine   *records.Engine
	registry *export.Registry
	metrics  *export.Metrics
	opts     *options
}

func newApp(opts *options) (*app, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.policy != "" {
		cfg.Policy = opts.policy
	}
	if opts.sample != "" {
		cfg.Sample = opts.sample
	}
	if opts.metricsFile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.File = opts.metricsFile
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return nil, err
	}
	export.SetLogger(logger.Named("export"))

	engine, err := cfg.Engine()
	if err != nil {
		return nil, err
	}

	var regOpts []export.Option
	var metrics *export.Metrics
	if cfg.Metrics.Enabled {
		metrics = export.NewMetrics(cfg.Metrics.Namespace)
		regOpts = append(regOpts, export.WithMetrics(metrics))
	}
	reg := export.NewRegistry(regOpts...)
	if err := reg.RegisterHost(export.NewRecordHost(engine)); err != nil {
		return nil, fmt.Errorf("register records: %w", err)
	}

	logger.Debug("configured",
		zap.String("policy", cfg.Policy),
		zap.String("sample", cfg.Sample),
		zap.Bool("metrics", cfg.Metrics.Enabled))

	return &app{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		registry: reg,
		metrics:  metrics,
		opts:     opts,
	}, nil
}

// close flushes the logger and writes the metrics file if one is
// configured.
func (a *app) close() error {
	_ = a.logger.Sync()
	if a.metrics == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.File); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
