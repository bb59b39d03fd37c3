package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts in the library",
	Long:  `List all workouts saved in the library with compile --save, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		internal.LogDebug("Listing workouts in %s", lib.Path())
		entries, err := lib.List(cmd.Context())
		if err != nil {
			return err
		}
		displayEntries(cmd.OutOrStdout(), entries, time.Now())
		return nil
	},
}

func displayEntries(out io.Writer, entries []*internal.LibraryEntry, now time.Time) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, headerStyle.Render("📋 No workouts found"))
		_, _ = fmt.Fprintln(out, idStyle.Render("💡 Tip: save one with `zwift-workout compile --save ...`"))
		return
	}

	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📋 Found %d workout(s)", len(entries))))
	_, _ = fmt.Fprintln(out)

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Duration")+"\t"+titleStyle.Render("FTP")+"\t"+titleStyle.Render("Created")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "Untitled"
		}

		// Truncate long names but keep them readable
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(entry.ShortID()),
			name,
			countStyle.Render(workout.FormatDuration(entry.TotalSeconds)),
			fmt.Sprintf("%dw", entry.FTP),
			dateStyle.Render(entry.Age(now)))
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, idStyle.Render("💡 Tip: Use the ID (e.g., ")+
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(entries[0].ShortID())+
		idStyle.Render(") with `zwift-workout show <id>`"))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
