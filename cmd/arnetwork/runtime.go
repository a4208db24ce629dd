package main

import (
	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/ardriveapp/arnetwork/internal/config"
	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/ardriveapp/arnetwork/internal/logger"
	"github.com/ardriveapp/arnetwork/internal/retryfetch"
	"github.com/rs/zerolog"
)

// runtime bundles what every command needs once config is loaded.
type runtime struct {
	cfg     *config.GlobalConfig
	logger  zerolog.Logger
	fetcher *retryfetch.Fetcher
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.LoadGlobalConfig(globalFlags.configPath)
	if err != nil {
		return nil, common.WrapError(err, "could not load config")
	}
	if globalFlags.logLevel != "" {
		cfg.LogConfig.LogLevel = globalFlags.logLevel
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, common.WrapError(err, "invalid config")
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, common.WrapError(err, "could not initialize logger")
	}

	client, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithConfig(cfg.HTTPClientConfig.ClientConfig()).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "could not create HTTP client")
	}

	return &runtime{
		cfg:     cfg,
		logger:  zLogger,
		fetcher: retryfetch.NewFetcher(client, zLogger),
	}, nil
}
