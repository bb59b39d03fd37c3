package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportDir    string
	exportForce  bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <workout-id>",
	Short: "Export a library workout to file",
	Long: `Export a workout from the library to any supported format
(zwo, json, yaml, md, mrc, plist).

Without --out the file is named after the workout and written to --dir.
Use 'zwift-workout list' to see available workout IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		entry, err := lib.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%w (use 'zwift-workout list' to see available workouts)", err)
		}

		format := resolveFormat(exportFormat, exportOutput)
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		cw, err := internal.CompileWorkout(entry.Source, entry.Meta(cfg))
		if err != nil {
			return fmt.Errorf("stored workout %s no longer compiles: %w", entry.ShortID(), err)
		}

		path := exportOutput
		if path == "" {
			path = filepath.Join(exportDir, fileNameFor(entry.Name, entry.ShortID())+"."+exporter.Extension())
		}

		err = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Exporting %s to %s", entry.Name, path), func() error {
			return writeOutput(cmd, path, exportForce, func(w io.Writer) error {
				if err := exporter.Export(cw, w); err != nil {
					return &internal.ExportError{Format: format, Path: path, Err: err}
				}
				return nil
			})
		})
		if err != nil {
			return err
		}

		if path != stdoutPath {
			internal.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Export complete: %s", path))
		}
		return nil
	},
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// fileNameFor turns a workout name into a file name, falling back to id.
func fileNameFor(name, id string) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return "workout_" + id
	}
	return slug
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format (zwo, json, yaml, md, mrc, plist)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file (- for stdout)")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Output directory when --out is not given")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Overwrite an existing output file")
}
