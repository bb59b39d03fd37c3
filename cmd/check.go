package cmd

import (
	"fmt"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var checkSpec specFlags

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a workout specification",
	Long: `Validate a workout specification without writing anything.

On success the normalized notation, the number of emitted stages and the total
time are printed. On failure the unconsumed input and the reason are printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := checkSpec.read()
		if err != nil {
			return err
		}
		cw, err := internal.CompileWorkout(src, internal.MetaFromConfig(cfg, ""))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		internal.FprintSuccess(out, fmt.Sprintf("Valid workout: %d stage(s), FTP %dw", cw.Document.Len(), cw.FTP()))
		_, _ = fmt.Fprintf(out, "Notation: %s\n", cw.Canonical)
		_, _ = fmt.Fprintf(out, "Total time of the workout is %s h.\n", workout.FormatDuration(cw.TotalSeconds()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkSpec.register(checkCmd)
}
