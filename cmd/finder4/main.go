package main

import (
	"fmt"
	"os"

	"finder4/internal/browse"
	"finder4/internal/config"
	"finder4/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile string
	debug   bool
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:   "finder4",
		Short: "A seeded column browser",
		Long: `finder4 is a Miller-column browser over two kinds of hierarchy: a
deterministic pseudo-random one grown from the selection path, and the
real filesystem. Selecting an entry in one column fills the next.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)
		},
		// No Run function - default behavior is to show help
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/finder4/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(lsCmd())
	rootCmd.AddCommand(genCmd())
	rootCmd.AddCommand(pathCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig loads the configured or default config file, falling back to
// defaults when loading fails so the browser always starts.
func loadConfig() (*config.Config, string) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			fmt.Printf("Warning: %v. Using default settings.\n", err)
			return config.New(), ""
		}
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		fmt.Printf("Warning: %v. Using default settings.\n", err)
		return config.New(), path
	}
	return cfg, path
}

// newProviders builds the fixed per-depth provider table for the
// configured content source.
func newProviders(cfg *config.Config) ([]browse.Provider, error) {
	switch cfg.Browser.Source {
	case "random":
		gen := &browse.Generator{
			MinLen: cfg.Generator.MinLength,
			MaxLen: cfg.Generator.MaxLength,
			Count:  cfg.Generator.Count,
		}
		return browse.Uniform(gen, cfg.Browser.MaxColumns), nil
	case "filesystem":
		patterns, err := cfg.HidePatterns()
		if err != nil {
			return nil, err
		}
		lister := browse.NewLister(cfg.Browser.Root)
		lister.ShowHidden = cfg.Listing.ShowHidden
		lister.Hide = patterns
		return browse.Uniform(lister, cfg.Browser.MaxColumns), nil
	default:
		return nil, fmt.Errorf("unknown browser source: %s", cfg.Browser.Source)
	}
}

// newEngine wires providers and restores the persisted path.
func newEngine(cfg *config.Config) (*browse.Engine, error) {
	providers, err := newProviders(cfg)
	if err != nil {
		return nil, err
	}
	engine := browse.NewEngine(providers)
	engine.SetSelectionFromPath(cfg.Browser.Path)
	return engine, nil
}

// applyOverrides folds command-line source/root overrides into the config.
func applyOverrides(cfg *config.Config, source, root string) error {
	if source != "" {
		cfg.Browser.Source = source
	}
	if root != "" {
		cfg.Browser.Root = root
	}
	return cfg.Validate()
}
