package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/nirvachan/onoe-sim/internal/dataset"
	"github.com/nirvachan/onoe-sim/internal/storage"
	syncx "github.com/nirvachan/onoe-sim/internal/sync"
)

var seedValue uint64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Clear and regenerate the constituency dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer dbh.Close()

		blobs, err := storage.NewFSStore(cfg.SnapshotDir)
		if err != nil {
			return err
		}
		seed := cfg.RNGSeed
		if cmd.Flags().Changed("seed") {
			seed = seedValue
		}
		rs := &dataset.Reseeder{Store: store, Blobs: blobs, Events: syncx.NewEventRepo(dbh), Log: logger}
		res, err := rs.Reseed(cmd.Context(), seed, "cli")
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "random seed (0 = time-based)")
}
