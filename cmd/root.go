package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/markcurve/internal/analysis"
	"github.com/abhisek/markcurve/internal/marks"
	"github.com/abhisek/markcurve/internal/render"
)

const defaultMarksFile = "marks.csv"

// reportWidth keeps report output identical regardless of terminal size.
const reportWidth = 80

var rootCmd = &cobra.Command{
	Use:   "markcurve [marks.csv]",
	Short: "Optimal-transport assessment analyser",
	Long: "Markcurve — maps a class's marks onto a target score distribution via\n" +
		"1-D optimal transport and reports band shifts, item quality and\n" +
		"assessment-design recommendations.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := runAnalysis(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Text(rep, reportWidth))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to JSON configuration file")
	pf.Bool("verbose", false, "Enable debug logging on stderr")
	pf.Float64("pass-rate", 0, "Target mass at or above the pass threshold (0,1)")
	pf.String("target-dist", "", "Target distribution family (truncnorm|beta)")
	pf.Int("bands", 0, "Quantile band count")
	pf.Bool("exclude-self", false, "Correlate items against rest-score totals")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(checkUpdateCmd)
}

// runAnalysis resolves configuration and input, then runs the pipeline.
// Shared by the root command and `view`.
func runAnalysis(cmd *cobra.Command, args []string) (*analysis.Report, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	path := defaultMarksFile
	if len(args) == 1 {
		path = args[0]
	}
	table, err := marks.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	return analysis.Run(table, cfg, logger)
}

// resolveConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func resolveConfig(cmd *cobra.Command) (analysis.Config, error) {
	cfg := analysis.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = analysis.LoadConfigFile(path)
		if err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("pass-rate") {
		cfg.PassRateTarget, _ = cmd.Flags().GetFloat64("pass-rate")
	}
	if cmd.Flags().Changed("target-dist") {
		cfg.TargetDist, _ = cmd.Flags().GetString("target-dist")
	}
	if cmd.Flags().Changed("bands") {
		cfg.BandCount, _ = cmd.Flags().GetInt("bands")
	}
	if cmd.Flags().Changed("exclude-self") {
		cfg.DiscriminationExcludesItem, _ = cmd.Flags().GetBool("exclude-self")
	}
	return cfg, cfg.Validate()
}
