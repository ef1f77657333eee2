// Command tlcache inspects and maintains translation cache snapshots.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ZaguanLabs/tlcache"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = tlcache.Version
	commit    = tlcache.GitCommit
	buildDate = tlcache.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tlcache", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	configFile := fs.String("config", "", "Config file (default: ./tlcache.yaml if present)")
	snapshot := fs.String("snapshot", "", "Snapshot file (default from config, else tlcache.json)")
	expirationDays := fs.Int("expiration-days", 0, "Entry TTL in days, 1-30 (default from config, else 3)")
	maxSizeMB := fs.Int("max-size-mb", 0, "Size cap in MB, 5-100 (default from config, else 20)")
	stats := fs.Bool("stats", false, "Print snapshot statistics")
	exportFile := fs.String("export", "", "Export entries to FILE ('-' for stdout)")
	importFile := fs.String("import", "", "Import entries from FILE")
	prune := fs.Bool("prune", false, "Remove expired entries")
	clear := fs.Bool("clear", false, "Remove all entries")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress diagnostic output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", tlcache.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	cfg, snapPath, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	// Flags override config file and environment.
	if *snapshot != "" {
		snapPath = *snapshot
	}
	if *expirationDays != 0 {
		cfg.ExpirationDays = *expirationDays
	}
	if *maxSizeMB != 0 {
		cfg.MaxSizeMB = *maxSizeMB
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	cache := tlcache.Open(snapPath, cfg, tlcache.WithLogger(log))
	defer cache.Close()

	switch {
	case *importFile != "":
		result, err := cache.ImportFromFile(*importFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "imported %d entries, skipped %d\n", result.Imported, result.Skipped)
		return cache.Flush()

	case *exportFile != "":
		if *exportFile == "-" {
			return cache.Export(stdout)
		}
		if err := cache.ExportToFile(*exportFile); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "exported %d entries to %s\n", cache.Len(), *exportFile)
		return nil

	case *prune:
		removed := cache.Prune()
		fmt.Fprintf(stdout, "pruned %d expired entries, %d remain\n", removed, cache.Len())
		return cache.Flush()

	case *clear:
		cache.Clear()
		fmt.Fprintln(stdout, "cache cleared")
		return cache.Flush()

	case *stats:
		printStats(stdout, cache, snapPath, cfg)
		return nil

	default:
		fs.Usage()
		return fmt.Errorf("no operation given (use -stats, -export, -import, -prune, or -clear)")
	}
}

// loadConfig layers the config file and TLCACHE_* environment variables
// over the defaults.
func loadConfig(path string) (tlcache.Config, string, error) {
	v := viper.New()
	v.SetDefault("snapshot", "tlcache.json")
	v.SetDefault("expiration_days", tlcache.DefaultExpirationDays)
	v.SetDefault("max_size_mb", tlcache.DefaultMaxSizeMB)

	v.SetEnvPrefix("TLCACHE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return tlcache.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("tlcache")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// A missing default config file is fine.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return tlcache.Config{}, "", fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := tlcache.Config{
		ExpirationDays: v.GetInt("expiration_days"),
		MaxSizeMB:      v.GetInt("max_size_mb"),
	}
	return cfg, v.GetString("snapshot"), nil
}

func printStats(w io.Writer, cache *tlcache.Cache, snapPath string, cfg tlcache.Config) {
	stats := cache.Stats()
	fmt.Fprintf(w, "snapshot:    %s\n", snapPath)
	fmt.Fprintf(w, "entries:     %d\n", stats.Entries)
	fmt.Fprintf(w, "size:        %d bytes\n", stats.Size)
	fmt.Fprintf(w, "expiration:  %d days\n", cfg.ExpirationDays)
	fmt.Fprintf(w, "size cap:    %d MB\n", cfg.MaxSizeMB)
}
