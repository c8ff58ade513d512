package config

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errNoConfigData        = errors.New("no config data provided")
	errNoSymbol            = errors.New("no symbol set")
	errBadTradeQuantity    = errors.New("trade quantity must be positive")
	errStartEndUnset       = errors.New("start and end dates must be set")
	errBadDate             = errors.New("start date must occur before end date")
	errNoDataSettings      = errors.New("no data settings set")
	errMultipleDataSources = errors.New("only one data source can be set")
	errNoAPIKey            = errors.New("no api key set for api data")
)

// Config defines a single backtest run
type Config struct {
	Symbol           string           `json:"symbol"`
	TradeQuantity    decimal.Decimal  `json:"trade-quantity"`
	StrategySettings StrategySettings `json:"strategy-settings"`
	DataSettings     DataSettings     `json:"data-settings"`
}

// StrategySettings contains the strategy choice and its custom parameters,
// such as lookback window length or buy/sell thresholds
type StrategySettings struct {
	Name           string         `json:"name"`
	CustomSettings map[string]any `json:"custom-settings,omitempty"`
}

// DataSettings is a superset of all data source settings. Exactly one
// source must be set per run
type DataSettings struct {
	CSVData      *CSVData      `json:"csv-data,omitempty"`
	APIData      *APIData      `json:"api-data,omitempty"`
	DatabaseData *DatabaseData `json:"database-data,omitempty"`
}

// CSVData defines a local OHLCV file source
type CSVData struct {
	FullPath string `json:"full-path"`
}

// APIData defines a historical prices HTTP provider source. The API key is
// scoped to this run's feed instance
type APIData struct {
	BaseURL   string    `json:"base-url"`
	APIKey    string    `json:"api-key"`
	StartDate time.Time `json:"start-date"`
	EndDate   time.Time `json:"end-date"`
}

// DatabaseData defines a ClickHouse candle table source
type DatabaseData struct {
	Addr      string    `json:"addr"`
	Database  string    `json:"database"`
	Table     string    `json:"table"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Interval  string    `json:"interval"`
	StartDate time.Time `json:"start-date"`
	EndDate   time.Time `json:"end-date"`
}
