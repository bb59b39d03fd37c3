package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/iksnae/zwift-workout/internal"
)

// parsedZWO reads back any .zwo document, keeping every workout element.
type parsedZWO struct {
	XMLName     xml.Name `xml:"workout_file"`
	Author      string   `xml:"author"`
	Name        string   `xml:"name"`
	Description string   `xml:"description"`
	SportType   string   `xml:"sportType"`
	Tags        []struct {
		Name string `xml:"name,attr"`
	} `xml:"tags>tag"`
	Workout struct {
		Steps []struct {
			XMLName xml.Name
			Attrs   []xml.Attr `xml:",any,attr"`
		} `xml:",any"`
	} `xml:"workout"`
}

func TestZWOExporter_Export(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "steady",
			src:  "30m@200w | 250w",
			want: []string{`<SteadyState Duration="1800" Power="0.8" pace="0"></SteadyState>`},
		},
		{
			name: "warmup and cooldown",
			src:  "10m@100w-190w + 5m@190w-150w | 250w",
			want: []string{
				`<Warmup Duration="600" PowerLow="0.4" PowerHigh="0.76" pace="0"></Warmup>`,
				`<Cooldown Duration="300" PowerLow="0.6" PowerHigh="0.76" pace="0"></Cooldown>`,
			},
		},
		{
			name: "intervals",
			src:  "9*(30s@290w + 30s@100w)| 250w",
			want: []string{`<IntervalsT Repeat="9" OnDuration="30" OffDuration="30" OnPower="1.16" OffPower="0.4" pace="0"></IntervalsT>`},
		},
		{
			name: "free ride",
			src:  "10m@_ | 250w",
			want: []string{`<Freeride Duration="600"></Freeride>`},
		},
		{
			name: "flat ramp is a warmup",
			src:  "1m@200w-200w | 250w",
			want: []string{`<Warmup Duration="60" PowerLow="0.8" PowerHigh="0.8" pace="0"></Warmup>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &ZWOExporter{}
			if err := exporter.Export(internal.CreateTestWorkout("Test", tt.src), &buf); err != nil {
				t.Fatalf("ZWOExporter.Export() error = %v", err)
			}
			output := buf.String()
			if !strings.HasPrefix(output, xml.Header) {
				t.Errorf("Output should start with the XML header, got %q", output[:20])
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q\nOutput:\n%s", want, output)
				}
			}
		})
	}
}

func TestZWOExporter_Preamble(t *testing.T) {
	cw := internal.CreateSampleWorkout()
	cw.Name = "Sweet & Sour"
	cw.Tags = []string{"vo2", "ramp"}

	var buf bytes.Buffer
	if err := (&ZWOExporter{}).Export(cw, &buf); err != nil {
		t.Fatalf("ZWOExporter.Export() error = %v", err)
	}

	var parsed parsedZWO
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid XML: %v\n%s", err, buf.String())
	}
	if parsed.Name != "Sweet & Sour" {
		t.Errorf("name = %q", parsed.Name)
	}
	if parsed.Author != "Test Author" {
		t.Errorf("author = %q", parsed.Author)
	}
	if parsed.Description != cw.Canonical {
		t.Errorf("description = %q, want %q", parsed.Description, cw.Canonical)
	}
	if parsed.SportType != "bike" {
		t.Errorf("sportType = %q, want bike", parsed.SportType)
	}
	if len(parsed.Tags) != 2 || parsed.Tags[0].Name != "vo2" {
		t.Errorf("tags = %+v", parsed.Tags)
	}

	var names []string
	for _, s := range parsed.Workout.Steps {
		names = append(names, s.XMLName.Local)
	}
	want := "Warmup IntervalsT SteadyState SteadyState SteadyState SteadyState SteadyState SteadyState Cooldown Freeride"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("steps = %s, want %s", got, want)
	}
}

func TestZWOExporter_Precision(t *testing.T) {
	cw := internal.CreateTestWorkout("Test", "30m@200w | 333w")

	var buf bytes.Buffer
	if err := (&ZWOExporter{}).Export(cw, &buf); err != nil {
		t.Fatalf("ZWOExporter.Export() error = %v", err)
	}
	// full precision round-trips the ratio exactly
	if !strings.Contains(buf.String(), `Power="`+formatRatio(200.0/333.0, -1)+`"`) {
		t.Errorf("Output should contain the exact ratio\n%s", buf.String())
	}

	cw.Precision = 2
	buf.Reset()
	if err := (&ZWOExporter{}).Export(cw, &buf); err != nil {
		t.Fatalf("ZWOExporter.Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), `Power="0.60"`) {
		t.Errorf("Output should contain the rounded ratio\n%s", buf.String())
	}
}

func TestZWOExporter_EmptyWorkout(t *testing.T) {
	var buf bytes.Buffer
	if err := (&ZWOExporter{}).Export(internal.CreateTestWorkout("Nothing", "0*(1m@100w) | 250w"), &buf); err != nil {
		t.Fatalf("ZWOExporter.Export() error = %v", err)
	}
	var parsed parsedZWO
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid XML: %v", err)
	}
	if len(parsed.Workout.Steps) != 0 {
		t.Errorf("steps = %d, want 0", len(parsed.Workout.Steps))
	}
}

func TestZWOExporter_Extension(t *testing.T) {
	if got := (&ZWOExporter{}).Extension(); got != "zwo" {
		t.Errorf("ZWOExporter.Extension() = %v, want zwo", got)
	}
}
