package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/spf13/cobra"
)

// stdoutPath makes an -o flag write to standard output.
const stdoutPath = "-"

// specFlags are the two mutually exclusive ways of passing a workout.
type specFlags struct {
	workout string
	input   string
}

func (s *specFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.workout, "workout", "w", "", "Workout specification")
	cmd.Flags().StringVarP(&s.input, "input", "i", "", "File containing the workout specification")
}

func (s *specFlags) given() bool {
	return s.workout != "" || s.input != ""
}

// read returns the specification text. Exactly one of -w and -i must be set.
func (s *specFlags) read() (string, error) {
	if (s.workout != "") == (s.input != "") {
		return "", &internal.InputError{Err: errors.New("either a workout (-w) or an input file (-i) must be specified")}
	}
	if s.workout != "" {
		return s.workout, nil
	}

	data, err := os.ReadFile(s.input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &internal.InputError{Path: s.input, Err: errors.New("input file does not exist")}
		}
		return "", &internal.InputError{Path: s.input, Err: err}
	}
	return string(data), nil
}

// writeOutput runs write against path. Files are written to a temporary
// sibling and renamed into place so a failed export leaves nothing behind.
func writeOutput(cmd *cobra.Command, path string, force bool, write func(io.Writer) error) error {
	if path == stdoutPath {
		return write(cmd.OutOrStdout())
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return &internal.OutputError{Path: path, Err: internal.ErrOutputExists}
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &internal.OutputError{Path: path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &internal.OutputError{Path: path, Err: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	// CreateTemp uses 0600, outputs get the usual 0644
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return &internal.OutputError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &internal.OutputError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &internal.OutputError{Path: path, Err: err}
	}
	internal.LogDebug("Wrote %s", path)
	return nil
}

// statusWriter is where progress and summary lines go: stdout, unless the
// document itself is being written there.
func statusWriter(cmd *cobra.Command, output string) io.Writer {
	if output == stdoutPath {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// resolveFormat picks the export format: the flag, then the output file's
// extension, then the configured default.
func resolveFormat(flagFormat, output string) string {
	if flagFormat != "" {
		return flagFormat
	}
	if output != "" && output != stdoutPath {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if internal.IsSupportedFormat(ext) {
			return ext
		}
	}
	return cfg.Format
}

// openLibrary opens the configured workout library.
func openLibrary() (*internal.Library, error) {
	return internal.OpenLibrary(cfg.Library)
}
