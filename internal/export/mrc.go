package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
)

// freeRidePercent stands in for free ride segments, which MRC cannot express.
const freeRidePercent = 50.0

// MRCExporter exports ERG-style .mrc files (minutes against percent of FTP)
type MRCExporter struct{}

// Export exports a workout to MRC format
func (e *MRCExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	bw := bufio.NewWriter(out)

	fmt.Fprintln(bw, "[COURSE HEADER]")
	fmt.Fprintln(bw, "VERSION = 2")
	fmt.Fprintln(bw, "UNITS = ENGLISH")
	fmt.Fprintf(bw, "DESCRIPTION = %s\n", singleLine(w.Description))
	fmt.Fprintf(bw, "FILE NAME = %s\n", singleLine(w.Name))
	fmt.Fprintln(bw, "MINUTES PERCENT")
	fmt.Fprintln(bw, "[END COURSE HEADER]")
	fmt.Fprintln(bw, "[COURSE DATA]")

	elapsed := 0
	for _, rec := range workout.Flatten(w.Document.Records) {
		start, end := mrcPercents(rec)
		fmt.Fprintf(bw, "%s\t%s\n", mrcMinutes(elapsed), mrcPercent(start))
		elapsed += rec.Seconds()
		fmt.Fprintf(bw, "%s\t%s\n", mrcMinutes(elapsed), mrcPercent(end))
	}

	fmt.Fprintln(bw, "[END COURSE DATA]")
	return bw.Flush()
}

// mrcPercents returns the percent of FTP at the start and end of a flattened record.
func mrcPercents(rec workout.Record) (float64, float64) {
	switch r := rec.(type) {
	case workout.SteadyBlock:
		return r.Power * 100, r.Power * 100
	case workout.RampBlock:
		return r.Start * 100, r.End * 100
	default:
		return freeRidePercent, freeRidePercent
	}
}

func mrcMinutes(seconds int) string {
	return strconv.FormatFloat(float64(seconds)/60, 'f', 2, 64)
}

// mrcPercent formats with at most two decimals.
func mrcPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Extension returns the file extension for this format
func (e *MRCExporter) Extension() string {
	return "mrc"
}
