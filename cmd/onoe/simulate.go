package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/nirvachan/onoe-sim/internal/impact"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [seat-id]",
	Short: "Print the ONOE impact report for one seat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer dbh.Close()

		s, report, err := impact.NewService(store, logger).SimulateByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"seat_info": s, "metrics": report})
	},
}
