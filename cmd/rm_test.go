package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
)

func TestRmCommand(t *testing.T) {
	dir := setupCLI(t)
	createLibrary(t, dir)

	stdout, _, err := executeCommand(t, "rm", "1234abcd")
	if err != nil {
		t.Fatalf("rm error = %v", err)
	}
	if !strings.Contains(stdout, "Removed Fixture Ride (1234abcd)") {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, err = executeCommand(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(stdout, "No workouts found") {
		t.Errorf("library should be empty, got:\n%s", stdout)
	}

	_, _, err = executeCommand(t, "delete", "1234abcd")
	if !errors.Is(err, internal.ErrNotFound) {
		t.Errorf("second rm error = %v, want ErrNotFound", err)
	}
}
