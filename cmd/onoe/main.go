package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nirvachan/onoe-sim/internal/config"
	"github.com/nirvachan/onoe-sim/internal/db"
	"github.com/nirvachan/onoe-sim/internal/logging"
	"github.com/nirvachan/onoe-sim/internal/seat"
)

var (
	cfg    config.Config
	logger *zap.Logger

	// Global flags
	dbDriver string
	dbDSN    string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "onoe",
	Short: "ONOE impact simulator",
	Long: `onoe synthesizes a constituency dataset for Delhi's three electoral tiers
(Lok Sabha, Vidhan Sabha, MCD), projects each seat's baseline under a
synchronized "One Nation One Election" cycle, and scores stakeholder pressure.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.FromEnv()
		if cmd.Flags().Changed("db-driver") {
			cfg.DBDriver = dbDriver
		}
		if cmd.Flags().Changed("db-dsn") {
			cfg.DBDSN = dbDSN
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		var err error
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "sqlite", "database driver (sqlite|postgres)")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db-dsn", "", "database DSN (driver default when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(serveCmd, seedCmd, simulateCmd, pressureCmd)
}

func openStore(ctx context.Context) (*sql.DB, *seat.SQLStore, error) {
	octx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	dbh, err := db.Open(octx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db open failed: %w", err)
	}
	return dbh, seat.NewSQLStore(dbh, cfg.DBDriver), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
