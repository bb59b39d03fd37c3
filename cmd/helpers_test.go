package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/zwift-workout/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fixtureID is the id of the workout created by createLibrary.
const fixtureID = "1234abcd-0000-4000-8000-000000000001"

// resetFlags puts every flag of c and its subcommands back to its default,
// since flag values are package variables that survive between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setupCLI isolates configuration and the library in a temp dir and returns it.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := testutil.CreateTempDir(t)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("ZWIFT_WORKOUT_LIBRARY", filepath.Join(dir, "library.db"))
	return dir
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// createLibrary writes a library holding a single free ride workout.
func createLibrary(t *testing.T, dir string) {
	t.Helper()
	testutil.CreateLibraryFixture(t, filepath.Join(dir, "library.db"), testutil.LibraryRow{
		ID:           fixtureID,
		Name:         "Fixture Ride",
		Author:       "Fixture Author",
		Source:       "10m@_ | 200w",
		Canonical:    "10m@_ | 200w",
		FTP:          200,
		TotalSeconds: 600,
		CreatedAt:    time.Now().Add(-3 * time.Hour),
	})
}
