package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OutputDir is the root directory for the per-store catalog files
	OutputDir string
	// Country is the storefront region passed to store APIs
	Country string
	// Locale is the storefront language passed to store APIs
	Locale string
	// CacheEnabled controls whether fetched pages are cached locally
	CacheEnabled bool
	// CacheFile is the path of the local fetch cache database
	CacheFile string
	// CacheTTL is how long a cached page stays fresh
	CacheTTL time.Duration
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("outputdir", "./out/")
	viper.SetDefault("crawl.country", "US")
	viper.SetDefault("crawl.locale", "en-US")
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.dbfile", "fetchcache.db")
	viper.SetDefault("cache.ttl", "12h")
	viper.SetDefault("database.enabled", false)
	viper.SetDefault("database.mode", "local")
	viper.SetDefault("database.dbfile", "gamecatalog.db")

	// Get values from viper
	OutputDir = viper.GetString("outputdir")
	Country = viper.GetString("crawl.country")
	Locale = viper.GetString("crawl.locale")
	CacheEnabled = viper.GetBool("cache.enabled")
	CacheFile = viper.GetString("cache.dbfile")
	CacheTTL = viper.GetDuration("cache.ttl")
}
