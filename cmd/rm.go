package cmd

import (
	"fmt"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <workout-id>",
	Aliases: []string{"delete"},
	Short:   "Remove a workout from the library",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		entry, err := lib.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		internal.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed %s (%s)", entry.Name, entry.ShortID()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
