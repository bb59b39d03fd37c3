package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/export"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	healthcheckDetails bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that zwift-workout is configured and working",
	Long: `Check the health of zwift-workout by verifying:
  • Configuration loading
  • Workout library accessibility
  • Compilation of a sample workout
  • Every export format

This command is useful for debugging configuration issues, especially in CI/CD environments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthcheck(cmd.OutOrStdout())
	},
}

func runHealthcheck(out io.Writer) error {
	line := func(a ...any) { _, _ = fmt.Fprintln(out, a...) }
	detail := func(format string, a ...any) {
		if healthcheckDetails {
			_, _ = fmt.Fprintf(out, "   "+format+"\n", a...)
		}
	}
	failed := 0

	line(sectionStyle.Render("🔍 Zwift Workout Health Check"))
	line()

	// Step 1: Configuration
	line(infoStyle.Render("Step 1: Loading configuration..."))
	if cfg.File != "" {
		line(successStyle.Render("✅ Config file loaded"))
		detail("File: %s", cfg.File)
	} else {
		line(successStyle.Render("✅ Using default configuration"))
	}
	detail("Format: %s", cfg.Format)
	detail("Precision: %d", cfg.Precision)
	detail("Library: %s", cfg.Library)
	line()

	// Step 2: Library
	line(infoStyle.Render("Step 2: Checking workout library..."))
	info, err := os.Stat(cfg.Library)
	switch {
	case errors.Is(err, os.ErrNotExist):
		line(warningStyle.Render("⚠️  Library not created yet"))
		detail("It is created by the first 'compile --save'")
	case err != nil:
		line(errorStyle.Render("❌ Cannot access library:"), err)
		failed++
	default:
		db, err := internal.OpenDatabase(cfg.Library)
		if err != nil {
			line(errorStyle.Render("❌ Failed to open library:"), err)
			failed++
			break
		}
		count, err := internal.CountWorkouts(db)
		_ = db.Close()
		if err != nil {
			line(errorStyle.Render("❌ Failed to read library:"), err)
			failed++
			break
		}
		line(successStyle.Render(fmt.Sprintf("✅ Library contains %d workout(s)", count)))
		detail("Size: %s", humanize.Bytes(uint64(info.Size())))
	}
	line()

	// Step 3: Compiler
	line(infoStyle.Render("Step 3: Compiling sample workout..."))
	cw, err := internal.CompileWorkout(internal.SampleWorkoutSource, internal.MetaFromConfig(cfg, "Healthcheck"))
	if err != nil {
		line(errorStyle.Render("❌ Sample workout failed to compile:"), err)
		return fmt.Errorf("health check failed: compiler error: %w", err)
	}
	line(successStyle.Render(fmt.Sprintf("✅ Compiled %d stage(s), %s", cw.Document.Len(), workout.FormatDuration(cw.TotalSeconds()))))
	detail("Notation: %s", cw.Canonical)
	line()

	// Step 4: Exporters
	line(infoStyle.Render("Step 4: Testing export formats..."))
	exportFailures := 0
	for _, format := range internal.SupportedFormats {
		exporter, err := export.NewExporter(format)
		if err == nil {
			err = exporter.Export(cw, io.Discard)
		}
		if err != nil {
			line(errorStyle.Render(fmt.Sprintf("❌ %s:", format)), err)
			exportFailures++
			continue
		}
		detail("%s ok", format)
	}
	failed += exportFailures
	if exportFailures == 0 {
		line(successStyle.Render(fmt.Sprintf("✅ All %d export formats work", len(internal.SupportedFormats))))
	}
	line()

	// Summary
	line(sectionStyle.Render("📊 Summary"))
	line()
	if failed > 0 {
		line(errorStyle.Render(fmt.Sprintf("❌ Health check failed (%d problem(s))", failed)))
		return fmt.Errorf("health check failed: %d problem(s)", failed)
	}
	line(successStyle.Render("✅ Health check passed!"))
	return nil
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show detailed diagnostic information")
}
