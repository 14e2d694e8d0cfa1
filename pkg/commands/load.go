package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/media"
	"tableflip.dev/moodlog/pkg/store"
)

// env is everything a command needs to reach the journal.
type env struct {
	Config  store.Config
	Records *store.Records
	Media   *media.Store
	App     *app.Service
	Logger  *zap.Logger
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

func load() (*env, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg, store.WithWatchLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("store loaded", zap.String("path", cfg.BasePath()), zap.String("media", cfg.MediaPath()))

	records := store.NewRecords(p, store.WithLogger(logger))
	files := media.New(cfg.MediaPath())
	return &env{
		Config:  cfg,
		Records: records,
		Media:   files,
		App:     app.New(records, app.WithMedia(files), app.WithLogger(logger)),
		Logger:  logger,
	}, nil
}
