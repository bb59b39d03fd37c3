package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/export"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	compileSpec        specFlags
	compileName        string
	compileOutput      string
	compileAuthor      string
	compileDescription string
	compileFormat      string
	compileForce       bool
	compileSave        bool
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a workout specification into a workout file",
	Long: `Compile a workout specification into a Zwift .zwo file (or any other export format).

The specification is given inline with -w or read from a file with -i. The output
format is taken from --format, then from the output file extension, then from the
configured default. An existing output file is only replaced with --force.

Examples:
  zwift-workout compile -n "Sweet Spot" -w "3*(10m@230w + 5m@150w) | 260w" -o sweetspot.zwo
  zwift-workout compile -n "VO2" -i vo2.txt -o vo2.mrc
  zwift-workout compile -n "Test" -w "30m@200w | 250w" -o - -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := compileSpec.read()
		if err != nil {
			return err
		}
		if strings.TrimSpace(compileName) == "" {
			return &internal.InputError{Err: errors.New("a name for the workout must be specified")}
		}

		format := resolveFormat(compileFormat, compileOutput)
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		meta := internal.MetaFromConfig(cfg, compileName)
		if compileAuthor != "" {
			meta.Author = compileAuthor
		}
		meta.Description = compileDescription

		if compileForce && compileOutput != stdoutPath {
			if _, err := os.Stat(compileOutput); err == nil {
				internal.FprintWarning(statusWriter(cmd, compileOutput), fmt.Sprintf("Overwriting %s", compileOutput))
			}
		}

		var cw *internal.CompiledWorkout
		steps := []internal.ProgressStep{
			{
				Message: "Compiling workout",
				Fn: func() error {
					var err error
					cw, err = internal.CompileWorkout(src, meta)
					return err
				},
			},
			{
				Message: fmt.Sprintf("Writing %s", compileOutput),
				Fn: func() error {
					return writeOutput(cmd, compileOutput, compileForce, func(w io.Writer) error {
						if err := exporter.Export(cw, w); err != nil {
							return &internal.ExportError{Format: format, Path: compileOutput, Err: err}
						}
						return nil
					})
				},
			},
		}
		if err := internal.ShowProgressWithSteps(cmd.Context(), steps); err != nil {
			return err
		}

		out := statusWriter(cmd, compileOutput)
		_, _ = fmt.Fprintf(out, "Total time of the workout is %s h.\n", workout.FormatDuration(cw.TotalSeconds()))

		if compileSave {
			return saveToLibrary(cmd, out, cw)
		}
		return nil
	},
}

func saveToLibrary(cmd *cobra.Command, out io.Writer, cw *internal.CompiledWorkout) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	entry, created, err := lib.Save(cmd.Context(), cw)
	if err != nil {
		return err
	}
	if created {
		internal.FprintSuccess(out, fmt.Sprintf("Saved to library as %s", entry.ShortID()))
	} else {
		internal.FprintInfo(out, fmt.Sprintf("Already in library as %s (%s)", entry.ShortID(), entry.Name))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileSpec.register(compileCmd)
	compileCmd.Flags().StringVarP(&compileName, "name", "n", "", "Name of the workout")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "Output file (- for stdout)")
	compileCmd.Flags().StringVarP(&compileAuthor, "author", "a", "", "Author of the workout (default from config)")
	compileCmd.Flags().StringVarP(&compileDescription, "description", "d", "", "Description (default: the normalized notation)")
	compileCmd.Flags().StringVarP(&compileFormat, "format", "f", "", "Output format (zwo, json, yaml, md, mrc, plist)")
	compileCmd.Flags().BoolVar(&compileForce, "force", false, "Overwrite an existing output file")
	compileCmd.Flags().BoolVar(&compileSave, "save", false, "Also save the workout to the library")
	_ = compileCmd.MarkFlagRequired("name")
	_ = compileCmd.MarkFlagRequired("output")
}
