package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
)

// MarkdownExporter exports a human-readable workout summary
type MarkdownExporter struct{}

// Export exports a workout to Markdown format
func (e *MarkdownExporter) Export(w *internal.CompiledWorkout, out io.Writer) error {
	_, _ = fmt.Fprintf(out, "# %s\n\n", escapeMarkdown(w.Name))

	if w.Author != "" {
		_, _ = fmt.Fprintf(out, "**Author:** %s  \n", escapeMarkdown(w.Author))
	}
	_, _ = fmt.Fprintf(out, "**FTP:** %dw  \n", w.FTP())
	_, _ = fmt.Fprintf(out, "**Total time:** %s  \n", workout.FormatDuration(w.TotalSeconds()))
	_, _ = fmt.Fprintf(out, "**Notation:** `%s`\n\n", w.Canonical)

	if w.Description != "" && w.Description != w.Canonical {
		_, _ = fmt.Fprintf(out, "%s\n\n", escapeMarkdown(w.Description))
	}
	if len(w.Tags) > 0 {
		_, _ = fmt.Fprintf(out, "**Tags:** %s\n\n", escapeMarkdown(strings.Join(w.Tags, ", ")))
	}

	_, _ = fmt.Fprintf(out, "---\n\n")
	_, _ = fmt.Fprintf(out, "## Stages\n\n")
	_, _ = fmt.Fprintf(out, "| # | Type | Duration | Target |\n")
	_, _ = fmt.Fprintf(out, "|---|------|----------|--------|\n")

	for i, rec := range w.Document.Records {
		_, _ = fmt.Fprintf(out, "| %d | %s | %s | %s |\n",
			i+1, rec.Kind(), workout.FormatDuration(rec.Seconds()), DescribeTarget(rec, w.FTP()))
	}

	return nil
}

// DescribeTarget renders a record's target in watts and percent of FTP.
func DescribeTarget(rec workout.Record, ftp int) string {
	switch r := rec.(type) {
	case workout.SteadyBlock:
		return wattsAndPercent(r.Power, ftp)
	case workout.RampBlock:
		return wattsAndPercent(r.Start, ftp) + " → " + wattsAndPercent(r.End, ftp)
	case workout.RepeatedInterval:
		return fmt.Sprintf("%d × (%s @ %s, %s @ %s)", r.Count,
			workout.FormatDuration(r.OnDuration), wattsAndPercent(r.OnPower, ftp),
			workout.FormatDuration(r.OffDuration), wattsAndPercent(r.OffPower, ftp))
	default:
		return "free ride"
	}
}

// wattsAndPercent renders a ratio as e.g. "200w (80%)".
func wattsAndPercent(ratio float64, ftp int) string {
	return fmt.Sprintf("%.0fw (%.0f%%)", ratio*float64(ftp), ratio*100)
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	text = strings.ReplaceAll(text, "|", "\\|")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
