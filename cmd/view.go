package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/markcurve/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [marks.csv]",
	Short: "Browse the analysis in an interactive terminal UI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := runAnalysis(cmd, args)
		if err != nil {
			return err
		}
		return tui.Run(rep)
	},
}
