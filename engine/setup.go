package engine

import (
	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/config"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/data/tick/api"
	"github.com/allaccountstaken/robo-advisors/data/tick/clickhouse"
	"github.com/allaccountstaken/robo-advisors/data/tick/csv"
	"github.com/allaccountstaken/robo-advisors/orderbook"
	"github.com/allaccountstaken/robo-advisors/portfolio"
	"github.com/allaccountstaken/robo-advisors/snapshot"
	"github.com/allaccountstaken/robo-advisors/strategies"
)

// New returns an engine over an explicit feed, strategy and reporter.
// The strategy must already have its settings applied
func New(cfg *config.Config, feed data.Handler, strategy strategies.Handler, reporter Reporter) (*BackTest, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if feed == nil || strategy == nil {
		return nil, common.ErrNilArguments
	}
	if reporter == nil {
		return nil, errNilReporter
	}
	bt := &BackTest{
		status:    Idle,
		symbol:    cfg.Symbol,
		feed:      feed,
		book:      orderbook.New(),
		snapshot:  snapshot.New(),
		portfolio: portfolio.New(),
		strategy:  strategy,
		reporter:  reporter,
	}
	strategy.SetSubmitter(bt)
	strategy.SetTradeQuantity(cfg.TradeQuantity)
	return bt, nil
}

// NewFromConfig takes a strategy config and configures a backtester
// instance to run from it
func NewFromConfig(cfg *config.Config, reporter Reporter) (*BackTest, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := strategies.LoadStrategyByName(cfg.StrategySettings.Name)
	if err != nil {
		return nil, err
	}
	strategy.SetDefaults()
	if len(cfg.StrategySettings.CustomSettings) > 0 {
		if err := strategy.SetCustomSettings(cfg.StrategySettings.CustomSettings); err != nil {
			return nil, err
		}
	}
	feed, err := feedFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, feed, strategy, reporter)
}

func feedFromConfig(cfg *config.Config) (data.Handler, error) {
	switch {
	case cfg.DataSettings.CSVData != nil:
		return &csv.Feed{
			Symbol:   cfg.Symbol,
			FullPath: cfg.DataSettings.CSVData.FullPath,
		}, nil
	case cfg.DataSettings.APIData != nil:
		return &api.Feed{
			Symbol:    cfg.Symbol,
			BaseURL:   cfg.DataSettings.APIData.BaseURL,
			APIKey:    cfg.DataSettings.APIData.APIKey,
			StartDate: cfg.DataSettings.APIData.StartDate,
			EndDate:   cfg.DataSettings.APIData.EndDate,
		}, nil
	case cfg.DataSettings.DatabaseData != nil:
		return &clickhouse.Feed{
			Symbol:    cfg.Symbol,
			Addr:      cfg.DataSettings.DatabaseData.Addr,
			Database:  cfg.DataSettings.DatabaseData.Database,
			Table:     cfg.DataSettings.DatabaseData.Table,
			Username:  cfg.DataSettings.DatabaseData.Username,
			Password:  cfg.DataSettings.DatabaseData.Password,
			Interval:  cfg.DataSettings.DatabaseData.Interval,
			StartDate: cfg.DataSettings.DatabaseData.StartDate,
			EndDate:   cfg.DataSettings.DatabaseData.EndDate,
		}, nil
	}
	return nil, errNoDataSource
}
