package export

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
)

// ZWOExporter writes Zwift workout files
type ZWOExporter struct{}

type zwoFile struct {
	XMLName     xml.Name   `xml:"workout_file"`
	Author      string     `xml:"author"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	SportType   string     `xml:"sportType"`
	Tags        zwoTags    `xml:"tags"`
	Workout     zwoWorkout `xml:"workout"`
}

type zwoTags struct {
	Tags []zwoTag `xml:"tag"`
}

type zwoTag struct {
	Name string `xml:"name,attr"`
}

type zwoWorkout struct {
	Steps []zwoStep
}

// zwoStep is any workout element; XMLName selects SteadyState, Warmup,
// Cooldown, Freeride or IntervalsT.
type zwoStep struct {
	XMLName     xml.Name
	Duration    string `xml:"Duration,attr,omitempty"`
	Power       string `xml:"Power,attr,omitempty"`
	PowerLow    string `xml:"PowerLow,attr,omitempty"`
	PowerHigh   string `xml:"PowerHigh,attr,omitempty"`
	Repeat      string `xml:"Repeat,attr,omitempty"`
	OnDuration  string `xml:"OnDuration,attr,omitempty"`
	OffDuration string `xml:"OffDuration,attr,omitempty"`
	OnPower     string `xml:"OnPower,attr,omitempty"`
	OffPower    string `xml:"OffPower,attr,omitempty"`
	Pace        string `xml:"pace,attr,omitempty"`
}

// Export writes w as a .zwo document
func (e *ZWOExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	doc := zwoFile{
		Author:      w.Author,
		Name:        w.Name,
		Description: w.Description,
		SportType:   w.SportType,
	}
	for _, tag := range w.Tags {
		doc.Tags.Tags = append(doc.Tags.Tags, zwoTag{Name: tag})
	}
	for _, rec := range w.Document.Records {
		doc.Workout.Steps = append(doc.Workout.Steps, zwoStepFor(rec, w.Precision))
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}

func zwoStepFor(rec workout.Record, precision int) zwoStep {
	ratio := func(r float64) string { return formatRatio(r, precision) }
	step := zwoStep{Duration: strconv.Itoa(rec.Seconds())}

	switch r := rec.(type) {
	case workout.SteadyBlock:
		step.XMLName.Local = "SteadyState"
		step.Power = ratio(r.Power)
		step.Pace = "0"
	case workout.RampBlock:
		// descending ramps become a Cooldown; PowerLow always holds the lower ratio
		if r.Start <= r.End {
			step.XMLName.Local = "Warmup"
			step.PowerLow, step.PowerHigh = ratio(r.Start), ratio(r.End)
		} else {
			step.XMLName.Local = "Cooldown"
			step.PowerLow, step.PowerHigh = ratio(r.End), ratio(r.Start)
		}
		step.Pace = "0"
	case workout.FreeRideBlock:
		step.XMLName.Local = "Freeride"
	case workout.RepeatedInterval:
		step.XMLName.Local = "IntervalsT"
		step.Duration = ""
		step.Repeat = strconv.Itoa(r.Count)
		step.OnDuration = strconv.Itoa(r.OnDuration)
		step.OffDuration = strconv.Itoa(r.OffDuration)
		step.OnPower = ratio(r.OnPower)
		step.OffPower = ratio(r.OffPower)
		step.Pace = "0"
	}
	return step
}

// Extension returns the file extension for this format
func (e *ZWOExporter) Extension() string {
	return "zwo"
}
