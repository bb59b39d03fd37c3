package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/zwift-workout/internal"
)

// JSONExporter exports workouts in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a workout to JSON format
func (e *JSONExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(newWorkoutView(w))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
