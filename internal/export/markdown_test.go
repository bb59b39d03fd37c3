package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		workout func() *internal.CompiledWorkout
		want    []string
		notWant []string
	}{
		{
			name:    "sample workout",
			workout: internal.CreateSampleWorkout,
			want: []string{
				"# Sample",
				"**Author:** Test Author",
				"**FTP:** 250w",
				"**Total time:** 0:40:00",
				"**Notation:** `10m@100w-190w + 9*(30s@290w + 30s@100w)",
				"**Tags:** test",
				"## Stages",
				"| 1 | ramp | 0:10:00 | 100w (40%) → 190w (76%) |",
				"| 2 | intervals | 0:09:00 | 9 × (0:00:30 @ 290w (116%), 0:00:30 @ 100w (40%)) |",
				"| 3 | steady | 0:01:00 | 300w (120%) |",
				"| 10 | free | 0:10:00 | free ride |",
			},
		},
		{
			name: "custom description",
			workout: func() *internal.CompiledWorkout {
				cw := internal.CreateTestWorkout("Endurance", "30m@200w | 250w")
				cw.Description = "Easy spin"
				return cw
			},
			want: []string{
				"# Endurance",
				"Easy spin",
				"| 1 | steady | 0:30:00 | 200w (80%) |",
			},
		},
		{
			name: "escapes markdown",
			workout: func() *internal.CompiledWorkout {
				cw := internal.CreateTestWorkout("**Bold** | Pipe", "30m@200w | 250w")
				cw.Author = ""
				cw.Tags = nil
				return cw
			},
			want:    []string{"# \\*\\*Bold\\*\\* \\| Pipe"},
			notWant: []string{"**Author:**", "**Tags:**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			if err := exporter.Export(tt.workout(), &buf); err != nil {
				t.Fatalf("MarkdownExporter.Export() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q\nOutput:\n%s", want, output)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(output, nw) {
					t.Errorf("Output should not contain %q\nOutput:\n%s", nw, output)
				}
			}
		})
	}
}

func TestMarkdownExporter_CanonicalDescriptionNotRepeated(t *testing.T) {
	cw := internal.CreateTestWorkout("Endurance", "30m@200w | 250w")

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(cw, &buf); err != nil {
		t.Fatalf("MarkdownExporter.Export() error = %v", err)
	}
	if n := strings.Count(buf.String(), cw.Canonical); n != 1 {
		t.Errorf("canonical notation appears %d times, want 1", n)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"**bold**", "\\*\\*bold\\*\\*"},
		{"__under__", "\\_\\_under\\_\\_"},
		{"a|b", "a\\|b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}
