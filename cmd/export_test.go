package cmd

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/testutil"
)

func TestExportCommand(t *testing.T) {
	dir := setupCLI(t)
	createLibrary(t, dir)

	t.Run("json to file", func(t *testing.T) {
		out := filepath.Join(dir, "fixture.json")
		stdout, _, err := executeCommand(t, "export", "1234", "-f", "json", "-o", out)
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		if !strings.Contains(stdout, "Export complete: "+out) {
			t.Errorf("stdout = %q", stdout)
		}

		var doc struct {
			Name   string `json:"name"`
			Author string `json:"author"`
			FTP    int    `json:"ftp"`
			Stages []struct {
				Type string `json:"type"`
			} `json:"stages"`
		}
		testutil.JSONUnmarshal(t, []byte(testutil.ReadFile(t, out)), &doc)
		if doc.Name != "Fixture Ride" || doc.Author != "Fixture Author" || doc.FTP != 200 {
			t.Errorf("doc = %+v", doc)
		}
		if len(doc.Stages) != 1 || doc.Stages[0].Type != "free" {
			t.Errorf("stages = %+v", doc.Stages)
		}
	})

	t.Run("default file name", func(t *testing.T) {
		outDir := filepath.Join(dir, "exports")
		if _, _, err := executeCommand(t, "export", fixtureID, "--dir", outDir); err != nil {
			t.Fatalf("export error = %v", err)
		}
		content := testutil.ReadFile(t, filepath.Join(outDir, "fixture_ride.zwo"))
		if err := xml.Unmarshal([]byte(content), new(struct{})); err != nil {
			t.Errorf("output is not valid XML: %v", err)
		}
		if !strings.Contains(content, `<Freeride Duration="600"></Freeride>`) {
			t.Errorf("output = %s", content)
		}
	})

	t.Run("stdout", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "export", "1234abcd", "-f", "mrc", "-o", "-")
		if err != nil {
			t.Fatalf("export error = %v", err)
		}
		if !strings.Contains(stdout, "FILE NAME = Fixture Ride") || strings.Contains(stdout, "Export complete") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		out := filepath.Join(dir, "taken.zwo")
		if err := os.WriteFile(out, []byte("taken"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, _, err := executeCommand(t, "export", "1234", "-o", out)
		if !errors.Is(err, internal.ErrOutputExists) {
			t.Errorf("error = %v, want ErrOutputExists", err)
		}
		if _, _, err := executeCommand(t, "export", "1234", "-o", out, "--force"); err != nil {
			t.Errorf("export --force error = %v", err)
		}
	})
}

func TestExportCommand_Errors(t *testing.T) {
	dir := setupCLI(t)
	createLibrary(t, dir)

	tests := []struct {
		name   string
		args   []string
		wantIs error
	}{
		{name: "unknown id", args: []string{"export", "ffff", "-o", "-"}, wantIs: internal.ErrNotFound},
		{name: "invalid format", args: []string{"export", "1234", "--format", "invalid", "-o", "-"}},
		{name: "missing id", args: []string{"export"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			if err == nil {
				t.Fatal("export should fail")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestFileNameFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sweet Spot 3x10", "sweet_spot_3x10"},
		{"  VO2 -- max!  ", "vo2_max"},
		{"!!!", "workout_abcd1234"},
		{"", "workout_abcd1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileNameFor(tt.name, "abcd1234"); got != tt.want {
				t.Errorf("fileNameFor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
