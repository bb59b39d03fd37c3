package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
	"github.com/iksnae/zwift-workout/internal/export"
	"github.com/iksnae/zwift-workout/internal/workout"
	"github.com/spf13/cobra"
)

var (
	inspectSpec   specFlags
	inspectTokens bool
	inspectTree   bool
	inspectUnroll bool
	inspectFormat string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how a workout specification is tokenized, parsed and emitted",
	Long: `Inspect the stages of the compiler for a workout specification.

This command prints:
  • the token stream (--tokens)
  • the parsed and normalized trees (--tree)
  • the emitted stage records, compacted or fully unrolled (--unroll)

Examples:
  zwift-workout inspect -w "2*(1m@300w + 1m@100w) | 250w" --tokens --tree
  zwift-workout inspect -i workout.txt --unroll --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := inspectSpec.read()
		if err != nil {
			return err
		}

		var tokens []workout.Token
		if inspectTokens {
			if tokens, err = workout.Lex(src); err != nil {
				return err
			}
		}

		res, err := workout.CompileWorkout(src)
		if err != nil {
			return err
		}
		doc := res.Document
		if inspectUnroll {
			doc = workout.Unroll(res.Normalized)
		}

		switch strings.ToLower(inspectFormat) {
		case "json":
			return writeInspectJSON(cmd.OutOrStdout(), tokens, res, doc)
		case "text", "":
			writeInspectText(cmd.OutOrStdout(), tokens, res, doc)
			return nil
		default:
			return fmt.Errorf("unsupported inspect format: %s (supported: text, json)", inspectFormat)
		}
	},
}

func writeInspectText(out io.Writer, tokens []workout.Token, res *workout.Result, doc *workout.Document) {
	if inspectTokens {
		_, _ = fmt.Fprintln(out, sectionStyle.Render("Tokens"))
		for _, tok := range tokens {
			_, _ = fmt.Fprintf(out, "%5d  %s\n", tok.Pos, tok)
		}
		_, _ = fmt.Fprintln(out)
	}

	if inspectTree {
		_, _ = fmt.Fprintln(out, sectionStyle.Render("Tree"))
		_, _ = fmt.Fprintf(out, "FTP %dw\n", res.Workout.FTP)
		writeStages(out, res.Workout.Stages, 0)
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, sectionStyle.Render("Normalized"))
		writeNStages(out, res.Normalized.Stages, 0)
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintln(out, sectionStyle.Render("Records"))
	for i, rec := range doc.Records {
		_, _ = fmt.Fprintf(out, "%3d  %-9s %8s  %s\n", i+1, rec.Kind(),
			workout.FormatDuration(rec.Seconds()), export.DescribeTarget(rec, doc.FTP))
	}
	_, _ = fmt.Fprintf(out, "%d record(s), %s\n", doc.Len(), workout.FormatDuration(doc.TotalSeconds()))
}

func writeStages(out io.Writer, stages []workout.Stage, depth int) {
	indent := strings.Repeat("  ", depth+1)
	for _, s := range stages {
		switch n := s.(type) {
		case *workout.Block:
			_, _ = fmt.Fprintf(out, "%sBlock %s @ %s\n", indent, n.Time, n.Power)
		case *workout.Repeat:
			_, _ = fmt.Fprintf(out, "%sRepeat %dx\n", indent, n.Count)
			writeStages(out, n.Body, depth+1)
		}
	}
}

func writeNStages(out io.Writer, stages []workout.NStage, depth int) {
	indent := strings.Repeat("  ", depth+1)
	for _, s := range stages {
		switch n := s.(type) {
		case *workout.NBlock:
			_, _ = fmt.Fprintf(out, "%sBlock %ds %s\n", indent, n.Seconds, describeNPower(n.Power))
		case *workout.NRepeat:
			_, _ = fmt.Fprintf(out, "%sRepeat %dx\n", indent, n.Count)
			writeNStages(out, n.Body, depth+1)
		}
	}
}

func describeNPower(p workout.NPower) string {
	switch p.Kind {
	case workout.FreeRide:
		return "free ride"
	case workout.Range:
		return fmt.Sprintf("%g -> %g", p.Ratio, p.EndRatio)
	default:
		return fmt.Sprintf("%g", p.Ratio)
	}
}

type inspectToken struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Pos    int    `json:"pos"`
}

type inspectRecord struct {
	Kind    string `json:"kind"`
	Seconds int    `json:"seconds"`
	Target  string `json:"target"`
}

type inspectReport struct {
	Canonical    string          `json:"canonical"`
	FTP          int             `json:"ftp"`
	Tokens       []inspectToken  `json:"tokens,omitempty"`
	Records      []inspectRecord `json:"records"`
	TotalSeconds int             `json:"total_seconds"`
}

func writeInspectJSON(out io.Writer, tokens []workout.Token, res *workout.Result, doc *workout.Document) error {
	report := inspectReport{
		Canonical:    res.Workout.String(),
		FTP:          doc.FTP,
		Records:      make([]inspectRecord, 0, doc.Len()),
		TotalSeconds: doc.TotalSeconds(),
	}
	for _, tok := range tokens {
		report.Tokens = append(report.Tokens, inspectToken{Type: tok.Type.String(), Lexeme: tok.Lexeme, Pos: tok.Pos})
	}
	for _, rec := range doc.Records {
		report.Records = append(report.Records, inspectRecord{
			Kind:    rec.Kind().String(),
			Seconds: rec.Seconds(),
			Target:  export.DescribeTarget(rec, doc.FTP),
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return &internal.OutputError{Path: "stdout", Err: err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectSpec.register(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectTokens, "tokens", false, "Print the token stream")
	inspectCmd.Flags().BoolVar(&inspectTree, "tree", false, "Print the parsed and normalized trees")
	inspectCmd.Flags().BoolVar(&inspectUnroll, "unroll", false, "Emit records without interval compaction")
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format (text, json)")
}
