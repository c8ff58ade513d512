package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/allaccountstaken/robo-advisors/config"
	"github.com/allaccountstaken/robo-advisors/engine"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/allaccountstaken/robo-advisors/report"
)

func main() {
	var configPath string
	var verbose bool
	flag.StringVar(&configPath, "configpath", filepath.Join("config", "examples", "meanreversion.json"), "the config containing strategy and data source params")
	flag.BoolVar(&verbose, "verbose", false, "enables verbose logging, including per-tick position status")
	flag.Parse()

	if err := log.SetupGlobalLogger(verbose); err != nil {
		fmt.Printf("Could not setup logger. Error: %v.\n", err)
		os.Exit(1)
	}

	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		fmt.Printf("Could not read config. Error: %v.\n", err)
		os.Exit(1)
	}
	if err = cfg.Validate(); err != nil {
		fmt.Printf("Could not validate config. Error: %v.\n", err)
		os.Exit(1)
	}
	cfg.PrintSetting()

	stats := report.New(cfg.StrategySettings.Name)
	bt, err := engine.NewFromConfig(cfg, stats)
	if err != nil {
		fmt.Printf("Could not setup backtester from config. Error: %v.\n", err)
		os.Exit(1)
	}
	if err = bt.Run(); err != nil {
		fmt.Printf("Could not complete run. Error: %v.\n", err)
		os.Exit(1)
	}
	stats.PrintResult()
}
