package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Subsystem loggers. They default to no-ops so packages can log freely
// before SetupGlobalLogger has run, as is the case in tests
var (
	Engine    = zap.NewNop().Sugar()
	Config    = zap.NewNop().Sugar()
	Feed      = zap.NewNop().Sugar()
	Strategy  = zap.NewNop().Sugar()
	OrderBook = zap.NewNop().Sugar()
	Report    = zap.NewNop().Sugar()
)

// SetupGlobalLogger builds the shared zap logger and assigns the named
// subsystem loggers
func SetupGlobalLogger(verbose bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	sugar := l.Sugar()
	Engine = sugar.Named("engine")
	Config = sugar.Named("config")
	Feed = sugar.Named("feed")
	Strategy = sugar.Named("strategy")
	OrderBook = sugar.Named("orderbook")
	Report = sugar.Named("report")
	return nil
}
