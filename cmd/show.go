package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/export"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	showSpec   specFlags
	showName   string
	showExpand bool
)

var (
	// Styles for show command
	workoutHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	workoutMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	notationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Italic(true)

	stageKindStyles = map[workout.RecordKind]lipgloss.Style{
		workout.SteadyRecord:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		workout.RampRecord:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		workout.IntervalRecord: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		workout.FreeRideRecord: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
	}

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [workout-id]",
	Short: "Show the stages of a workout",
	Long: `Display the stages of a workout with their targets in watts and percent of FTP.

The workout is either given with -w / -i or looked up in the library by id
(a unique prefix of the id is enough, see 'zwift-workout list').`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cw, err := loadShowWorkout(cmd, args)
		if err != nil {
			return err
		}
		renderWorkout(cmd.OutOrStdout(), cw, showExpand)
		return nil
	},
}

func loadShowWorkout(cmd *cobra.Command, args []string) (*internal.CompiledWorkout, error) {
	switch {
	case len(args) == 1 && showSpec.given():
		return nil, &internal.InputError{Err: errors.New("give either a workout id or -w/-i, not both")}
	case len(args) == 1:
		lib, err := openLibrary()
		if err != nil {
			return nil, err
		}
		defer func() { _ = lib.Close() }()

		entry, err := lib.Get(cmd.Context(), args[0])
		if err != nil {
			return nil, err
		}
		internal.LogDebug("Loaded workout %s from library", entry.ID)
		return internal.CompileWorkout(entry.Source, entry.Meta(cfg))
	default:
		src, err := showSpec.read()
		if err != nil {
			return nil, err
		}
		return internal.CompileWorkout(src, internal.MetaFromConfig(cfg, showName))
	}
}

// renderWorkout prints a styled stage listing. With expand, repeated
// intervals are listed as their individual on/off blocks.
func renderWorkout(out io.Writer, cw *internal.CompiledWorkout, expand bool) {
	title := cw.Name
	if title == "" {
		title = "Workout"
	}
	_, _ = fmt.Fprintln(out, workoutHeaderStyle.Render("🚴 "+title))

	meta := []string{
		fmt.Sprintf("FTP %dw", cw.FTP()),
		fmt.Sprintf("Total %s", workout.FormatDuration(cw.TotalSeconds())),
		fmt.Sprintf("%d stage(s)", cw.Document.Len()),
	}
	if cw.Author != "" {
		meta = append(meta, "by "+cw.Author)
	}
	_, _ = fmt.Fprintln(out, workoutMetaStyle.Render(strings.Join(meta, " · ")))
	_, _ = fmt.Fprintln(out, notationStyle.Render(cw.Canonical))
	_, _ = fmt.Fprintln(out)

	records := cw.Document.Records
	if expand {
		records = workout.Flatten(records)
	}

	elapsed := 0
	for i, rec := range records {
		kind := stageKindStyles[rec.Kind()].Render(fmt.Sprintf("%-9s", rec.Kind()))
		_, _ = fmt.Fprintf(out, "%3d  %s  %s  %s  %s\n",
			i+1,
			workoutMetaStyle.Render(workout.FormatDuration(elapsed)),
			kind,
			durationStyle.Render(workout.FormatDuration(rec.Seconds())),
			export.DescribeTarget(rec, cw.FTP()))
		elapsed += rec.Seconds()
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, workoutMetaStyle.Render("  (no stages)"))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showSpec.register(showCmd)
	showCmd.Flags().StringVarP(&showName, "name", "n", "", "Name to display for an inline workout")
	showCmd.Flags().BoolVar(&showExpand, "expand", false, "List repeated intervals as individual blocks")
}
