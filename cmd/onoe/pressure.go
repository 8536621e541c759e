package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nirvachan/onoe-sim/internal/pressure"
)

var factors = pressure.DefaultFactors

var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Rank stakeholder pressure for the given sensitivity factors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := factors.Validate(); err != nil {
			return err
		}
		profiles, err := pressure.Load(cfg.StakeholdersFile)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tSTAKEHOLDER\tPRESSURE\tSHARE")
		for _, r := range pressure.Rank(profiles, factors) {
			fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.0f%%\n", r.Rank, r.Name, r.Pressure, r.Share)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), pressure.Verdict)
		return nil
	},
}

func init() {
	pressureCmd.Flags().Float64Var(&factors.Cost, "cost", factors.Cost, "cost sensitivity factor")
	pressureCmd.Flags().Float64Var(&factors.Turnout, "turnout", factors.Turnout, "turnout sensitivity factor")
}
