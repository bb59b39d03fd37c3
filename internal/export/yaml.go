package export

import (
	"io"

	"github.com/iksnae/zwift-workout/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports workouts in YAML format
type YAMLExporter struct{}

// Export exports a workout to YAML format
func (e *YAMLExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(newWorkoutView(w))
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
