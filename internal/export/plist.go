package export

import (
	"io"

	"github.com/iksnae/zwift-workout/internal"
	"howett.net/plist"
)

// PlistExporter exports workouts as an XML property list
type PlistExporter struct{}

// Export exports a workout to plist format
func (e *PlistExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	enc := plist.NewEncoderForFormat(out, plist.XMLFormat)
	enc.Indent("\t")

	return enc.Encode(newWorkoutView(w))
}

// Extension returns the file extension for this format
func (e *PlistExporter) Extension() string {
	return "plist"
}
