package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/allaccountstaken/robo-advisors/strategies"
	"github.com/shopspring/decimal"
)

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshalls byte data into a config struct
func LoadConfig(data []byte) (*Config, error) {
	var resp *Config
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	// a literal null unmarshals without error but leaves nothing to run
	if resp == nil {
		return nil, errNoConfigData
	}
	return resp, nil
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return errNoSymbol
	}
	if c.TradeQuantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w, received %v", errBadTradeQuantity, c.TradeQuantity)
	}
	if _, err := strategies.LoadStrategyByName(c.StrategySettings.Name); err != nil {
		return err
	}
	return c.validateDataSettings()
}

func (c *Config) validateDataSettings() error {
	var sources int
	if c.DataSettings.CSVData != nil {
		sources++
	}
	if c.DataSettings.APIData != nil {
		sources++
		if c.DataSettings.APIData.APIKey == "" {
			return errNoAPIKey
		}
		if err := validateDates(c.DataSettings.APIData.StartDate, c.DataSettings.APIData.EndDate); err != nil {
			return err
		}
	}
	if c.DataSettings.DatabaseData != nil {
		sources++
		if err := validateDates(c.DataSettings.DatabaseData.StartDate, c.DataSettings.DatabaseData.EndDate); err != nil {
			return err
		}
	}
	switch {
	case sources == 0:
		return errNoDataSettings
	case sources > 1:
		return errMultipleDataSources
	}
	return nil
}

// validateDates checks whether someone has set a date poorly in their config
func validateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errStartEndUnset
	}
	if !start.Before(end) {
		return errBadDate
	}
	return nil
}

// PrintSetting prints relevant settings to the log for easy reading
func (c *Config) PrintSetting() {
	log.Config.Infof("------------------Backtester Settings------------------------")
	log.Config.Infof("Symbol: %v", c.Symbol)
	log.Config.Infof("Trade quantity: %v", c.TradeQuantity)
	log.Config.Infof("Strategy: %v", c.StrategySettings.Name)
	if len(c.StrategySettings.CustomSettings) > 0 {
		log.Config.Infof("Custom strategy variables:")
		for k, v := range c.StrategySettings.CustomSettings {
			log.Config.Infof("%s: %v", k, v)
		}
	} else {
		log.Config.Infof("Custom strategy variables: unset")
	}
	if c.DataSettings.CSVData != nil {
		log.Config.Infof("CSV file: %v", c.DataSettings.CSVData.FullPath)
	}
	if c.DataSettings.APIData != nil {
		log.Config.Infof("API provider: %v", c.DataSettings.APIData.BaseURL)
		log.Config.Infof("Start date: %v", c.DataSettings.APIData.StartDate.Format(time.DateOnly))
		log.Config.Infof("End date: %v", c.DataSettings.APIData.EndDate.Format(time.DateOnly))
	}
	if c.DataSettings.DatabaseData != nil {
		log.Config.Infof("Database: %v %v.%v", c.DataSettings.DatabaseData.Addr, c.DataSettings.DatabaseData.Database, c.DataSettings.DatabaseData.Table)
		log.Config.Infof("Interval: %v", c.DataSettings.DatabaseData.Interval)
		log.Config.Infof("Start date: %v", c.DataSettings.DatabaseData.StartDate.Format(time.DateOnly))
		log.Config.Infof("End date: %v", c.DataSettings.DatabaseData.EndDate.Format(time.DateOnly))
	}
}
