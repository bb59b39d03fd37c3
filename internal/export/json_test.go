package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name       string
		workout    *internal.CompiledWorkout
		wantTypes  []string
		wantTotal  int
		wantFTP    int
		wantSource string
	}{
		{
			name:       "sample workout",
			workout:    internal.CreateSampleWorkout(),
			wantTypes:  []string{"ramp", "intervals", "steady", "steady", "steady", "steady", "steady", "steady", "ramp", "free"},
			wantTotal:  2400,
			wantFTP:    250,
			wantSource: internal.SampleWorkoutSource,
		},
		{
			name:       "single steady block",
			workout:    internal.CreateTestWorkout("Endurance", "30m@200w | 250w"),
			wantTypes:  []string{"steady"},
			wantTotal:  1800,
			wantFTP:    250,
			wantSource: "30m@200w | 250w",
		},
		{
			name:       "empty workout",
			workout:    internal.CreateTestWorkout("Nothing", "0*(1m@100w) | 200w"),
			wantTypes:  []string{},
			wantTotal:  0,
			wantFTP:    200,
			wantSource: "0*(1m@100w) | 200w",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &JSONExporter{}

			if err := exporter.Export(tt.workout, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}

			var result workoutView
			if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
				t.Fatalf("Output is not valid JSON: %v", err)
			}

			if result.FTP != tt.wantFTP {
				t.Errorf("ftp = %d, want %d", result.FTP, tt.wantFTP)
			}
			if result.TotalSeconds != tt.wantTotal {
				t.Errorf("total_seconds = %d, want %d", result.TotalSeconds, tt.wantTotal)
			}
			if result.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", result.Source, tt.wantSource)
			}
			if result.Stages == nil {
				t.Errorf("stages should be an array, not null")
			}
			var types []string
			for _, s := range result.Stages {
				types = append(types, s.Type)
			}
			if strings.Join(types, ",") != strings.Join(tt.wantTypes, ",") {
				t.Errorf("stage types = %v, want %v", types, tt.wantTypes)
			}
		})
	}
}

func TestJSONExporter_StageFields(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(internal.CreateSampleWorkout(), &buf); err != nil {
		t.Fatalf("JSONExporter.Export() error = %v", err)
	}

	var result workoutView
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	warmup := result.Stages[0]
	if warmup.Duration != 600 || *warmup.PowerStart != 0.4 || *warmup.PowerEnd != 0.76 {
		t.Errorf("warmup = %+v", warmup)
	}
	if warmup.Power != nil {
		t.Errorf("ramp should not carry a steady power")
	}

	intervals := result.Stages[1]
	if intervals.Repeat != 9 || intervals.OnDuration != 30 || intervals.OffDuration != 30 {
		t.Errorf("intervals = %+v", intervals)
	}
	if *intervals.OnPower != 1.16 || *intervals.OffPower != 0.4 {
		t.Errorf("interval powers = %v/%v", *intervals.OnPower, *intervals.OffPower)
	}
	if intervals.Duration != 540 {
		t.Errorf("intervals duration = %d, want 540", intervals.Duration)
	}

	if steady := result.Stages[2]; *steady.Power != 1.2 {
		t.Errorf("first unrolled steady power = %v, want 1.2", *steady.Power)
	}

	free := result.Stages[9]
	if free.Power != nil || free.PowerStart != nil || free.OnPower != nil {
		t.Errorf("free ride should carry no power, got %+v", free)
	}

	if !strings.Contains(buf.String(), "\n  \"name\": \"Sample\"") {
		t.Errorf("JSON should be indented\n%s", buf.String())
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	exporter := &JSONExporter{}
	if got := exporter.Extension(); got != "json" {
		t.Errorf("JSONExporter.Extension() = %v, want json", got)
	}
}
