package export

import (
	"strconv"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
)

// formatRatio renders an FTP ratio. A negative precision gives the shortest
// text that parses back to exactly r.
func formatRatio(r float64, precision int) string {
	return strconv.FormatFloat(r, 'f', precision, 64)
}

// roundRatio applies the same rounding as formatRatio but keeps a number.
func roundRatio(r float64, precision int) float64 {
	if precision < 0 {
		return r
	}
	v, err := strconv.ParseFloat(formatRatio(r, precision), 64)
	if err != nil {
		return r
	}
	return v
}

// workoutView is the serialization schema shared by the JSON, YAML and plist exporters.
type workoutView struct {
	Name         string      `json:"name" yaml:"name" plist:"name"`
	Author       string      `json:"author,omitempty" yaml:"author,omitempty" plist:"author,omitempty"`
	Description  string      `json:"description,omitempty" yaml:"description,omitempty" plist:"description,omitempty"`
	SportType    string      `json:"sport_type" yaml:"sport_type" plist:"sport_type"`
	Tags         []string    `json:"tags,omitempty" yaml:"tags,omitempty" plist:"tags,omitempty"`
	FTP          int         `json:"ftp" yaml:"ftp" plist:"ftp"`
	TotalSeconds int         `json:"total_seconds" yaml:"total_seconds" plist:"total_seconds"`
	Source       string      `json:"source" yaml:"source" plist:"source"`
	Stages       []stageView `json:"stages" yaml:"stages" plist:"stages"`
}

type stageView struct {
	Type        string   `json:"type" yaml:"type" plist:"type"`
	Duration    int      `json:"duration" yaml:"duration" plist:"duration"`
	Power       *float64 `json:"power,omitempty" yaml:"power,omitempty" plist:"power,omitempty"`
	PowerStart  *float64 `json:"power_start,omitempty" yaml:"power_start,omitempty" plist:"power_start,omitempty"`
	PowerEnd    *float64 `json:"power_end,omitempty" yaml:"power_end,omitempty" plist:"power_end,omitempty"`
	Repeat      int      `json:"repeat,omitempty" yaml:"repeat,omitempty" plist:"repeat,omitempty"`
	OnDuration  int      `json:"on_duration,omitempty" yaml:"on_duration,omitempty" plist:"on_duration,omitempty"`
	OnPower     *float64 `json:"on_power,omitempty" yaml:"on_power,omitempty" plist:"on_power,omitempty"`
	OffDuration int      `json:"off_duration,omitempty" yaml:"off_duration,omitempty" plist:"off_duration,omitempty"`
	OffPower    *float64 `json:"off_power,omitempty" yaml:"off_power,omitempty" plist:"off_power,omitempty"`
}

func newWorkoutView(w *internal.CompiledWorkout) *workoutView {
	ratio := func(r float64) *float64 {
		v := roundRatio(r, w.Precision)
		return &v
	}

	stages := make([]stageView, 0, w.Document.Len())
	for _, rec := range w.Document.Records {
		sv := stageView{Type: rec.Kind().String(), Duration: rec.Seconds()}
		switch r := rec.(type) {
		case workout.SteadyBlock:
			sv.Power = ratio(r.Power)
		case workout.RampBlock:
			sv.PowerStart = ratio(r.Start)
			sv.PowerEnd = ratio(r.End)
		case workout.RepeatedInterval:
			sv.Repeat = r.Count
			sv.OnDuration = r.OnDuration
			sv.OnPower = ratio(r.OnPower)
			sv.OffDuration = r.OffDuration
			sv.OffPower = ratio(r.OffPower)
		}
		stages = append(stages, sv)
	}

	return &workoutView{
		Name:         w.Name,
		Author:       w.Author,
		Description:  w.Description,
		SportType:    w.SportType,
		Tags:         w.Tags,
		FTP:          w.FTP(),
		TotalSeconds: w.TotalSeconds(),
		Source:       w.Source,
		Stages:       stages,
	}
}
