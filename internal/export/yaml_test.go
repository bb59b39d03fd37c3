package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		workout *internal.CompiledWorkout
		want    []string
	}{
		{
			name:    "sample workout",
			workout: internal.CreateSampleWorkout(),
			want: []string{
				"name: Sample",
				"author: Test Author",
				"sport_type: bike",
				"ftp: 250",
				"total_seconds: 2400",
				"- type: ramp",
				"power_start: 0.4",
				"power_end: 0.76",
				"- type: intervals",
				"repeat: 9",
				"- type: free",
			},
		},
		{
			name:    "steady",
			workout: internal.CreateTestWorkout("Endurance", "30m@200w | 250w"),
			want: []string{
				"name: Endurance",
				"- type: steady",
				"duration: 1800",
				"power: 0.8",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &YAMLExporter{}

			if err := exporter.Export(tt.workout, &buf); err != nil {
				t.Fatalf("YAMLExporter.Export() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q\nOutput:\n%s", want, output)
				}
			}

			var result workoutView
			if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
				t.Fatalf("Output is not valid YAML: %v", err)
			}
			if len(result.Stages) != tt.workout.Document.Len() {
				t.Errorf("stages = %d, want %d", len(result.Stages), tt.workout.Document.Len())
			}
			if result.Source != tt.workout.Source {
				t.Errorf("source = %q, want %q", result.Source, tt.workout.Source)
			}
		})
	}
}

func TestYAMLExporter_Precision(t *testing.T) {
	cw := internal.CreateTestWorkout("Test", "30m@200w | 333w")
	cw.Precision = 2

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(cw, &buf); err != nil {
		t.Fatalf("YAMLExporter.Export() error = %v", err)
	}

	var result workoutView
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if got := *result.Stages[0].Power; got != 0.6 {
		t.Errorf("power = %v, want 0.6", got)
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("YAMLExporter.Extension() = %v, want yaml", got)
	}
}
