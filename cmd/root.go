package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ephellon/gamecatalog/internal/adapters"
	"github.com/ephellon/gamecatalog/internal/cache"
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/config"
	"github.com/ephellon/gamecatalog/internal/fetch"
	"github.com/ephellon/gamecatalog/internal/runner"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the gamecatalog application
type CLI struct {
	// Global flags
	Out string `short:"o" help:"Root directory for the per-store catalog files" default:"./out"`

	// Cache flags
	Cache       bool   `help:"Cache fetched pages in a local SQLite database"`
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./fetchcache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 12h)" default:"12h"`

	// Database flags
	Database     bool   `help:"Persist crawled records to a data store"`
	DatabaseMode string `help:"Data store mode: local or remote" default:"local"`
	DatabaseDB   string `help:"Path to SQLite database file" default:"./gamecatalog.db"`

	Crawl CrawlCmd `cmd:"" help:"Crawl store catalogs into per-letter JSON files"`
}

// CrawlCmd represents the crawl command
type CrawlCmd struct {
	Stores  []string `short:"s" help:"Stores to crawl (steam, psn, xbox, nintendo)" default:"steam"`
	Country string   `help:"Storefront region code" default:"US"`
	Locale  string   `help:"Storefront language tag" default:"en-US"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("gamecatalog"),
		kong.Description("A tool to crawl game storefronts into a unified catalog."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("outputdir", "./out/")
	viper.SetDefault("crawl.country", "US")
	viper.SetDefault("crawl.locale", "en-US")

	// Database defaults
	viper.SetDefault("database.enabled", false)
	viper.SetDefault("database.mode", "local")
	viper.SetDefault("database.dbfile", "./gamecatalog.db")

	// Cache defaults
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.dbfile", "./fetchcache.db")
	viper.SetDefault("cache.ttl", "12h")

	// Enable environment variable support
	viper.AutomaticEnv()
	// Bind specific environment variables to config keys
	if err := viper.BindEnv("database.api_token", "GAMECATALOG_API_TOKEN"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("outputdir", cli.Out)

	// Update database config
	viper.Set("database.enabled", cli.Database)
	viper.Set("database.mode", cli.DatabaseMode)
	viper.Set("database.dbfile", cli.DatabaseDB)

	// Update cache config
	viper.Set("cache.enabled", cli.Cache)
	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)

	config.InitConfig()
}

// Run crawls every requested store concurrently.
func (c *CrawlCmd) Run() error {
	viper.Set("crawl.country", c.Country)
	viper.Set("crawl.locale", c.Locale)
	config.InitConfig()

	adapterConfig := catalog.AdapterConfig{
		Country: config.Country,
		Locale:  config.Locale,
	}

	var opts []fetch.Option
	if config.CacheEnabled {
		pageCache, err := cache.New(config.CacheFile, config.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to open fetch cache: %w", err)
		}
		defer func() { _ = pageCache.Close() }()
		opts = append(opts, fetch.WithCache(pageCache))
	}
	client := fetch.NewClient(opts...)

	var list []adapters.Adapter
	for _, name := range c.Stores {
		adapter, err := adapters.New(name, adapterConfig, client)
		if err != nil {
			return err
		}
		list = append(list, adapter)
	}

	return runner.RunAll(context.Background(), list, config.OutputDir)
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("GAMECATALOG_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
