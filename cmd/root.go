package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	cfgFile     string
	logFormat   string
	libraryPath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"

	// cfg is loaded once per invocation by the root PersistentPreRunE.
	cfg *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zwift-workout",
	Short: "Compile compact interval notation into Zwift workout files",
	Long: `Compile workouts written in a compact interval notation into Zwift .zwo files
and other training formats.

A workout is a sequence of stages followed by the FTP in watts:

  10m@100w-190w + 9*(30s@290w + 30s@100w) + 10m@_ | 250w

  30m@200w        30 minutes at 200 watts
  10m@100w-190w   ramp from 100 to 190 watts
  10m@_           free ride
  9*( ... )       repeat the body nine times

Quick Start:
  zwift-workout compile -n "VO2" -w "9*(30s@290w + 30s@100w) | 250w" -o vo2.zwo
  zwift-workout check -i workout.txt
  zwift-workout show -w "30m@200w | 250w"
  zwift-workout list`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := internal.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if logFormat != "" {
			c.LogFormat = logFormat
		}
		if libraryPath != "" {
			c.Library = libraryPath
		}
		if err := c.Validate(); err != nil {
			return err
		}

		if err := internal.InitLogger(c.LoggerConfig()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		internal.SetVerbose(verbose || c.Debug)
		if c.File != "" {
			internal.LogDebug("Using config file %s", c.File)
		}

		cfg = c
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		internal.SyncLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints compile errors as the bare two-line report and
// everything else with an Error: prefix.
func reportError(w io.Writer, err error) {
	if werr, ok := workout.AsError(err); ok {
		fmt.Fprintln(w, werr.Error())
		return
	}
	internal.FprintError(w, fmt.Sprintf("Error: %v", err))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/zwift-workout/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (human, json)")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "Path to the workout library database")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
