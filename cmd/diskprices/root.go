package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HerbHall/diskprices/internal/config"
	pkgcatalog "github.com/HerbHall/diskprices/pkg/catalog"
)

// app carries what every subcommand needs once the root pre-run has
// loaded configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "diskprices",
		Short: "DiskPrices storage listing catalog",
		Long: `DiskPrices compares storage listings (HDD, SSD, Tape, RAM, SD Card) by
price per terabyte, flags the best deal of each category and keeps the
filter, search and sort state in the page URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newViewCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// source returns the listing source named by catalog.path, or the
// embedded snapshot.
func (a *app) source() *pkgcatalog.Catalog {
	if path := a.cfg.GetString("catalog.path"); path != "" {
		return pkgcatalog.NewCatalogFromFile(path)
	}
	return pkgcatalog.NewCatalog()
}
