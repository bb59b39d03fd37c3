// Package workout compiles the compact interval notation
//
//	2*(5m@180w + 9*(30s@290w + 30s@100w)) + 10m@_ | 250w
//
// into a linear document of stage records. The pipeline is
// lexer -> parser -> normalizer -> emitter; each step is a pure function and
// the first error stops it.
package workout

import "fmt"

// Result carries every intermediate tree of a successful compilation.
type Result struct {
	Workout    *Workout
	Normalized *NormalizedWorkout
	Document   *Document
}

// CompileWorkout runs the whole pipeline and keeps the intermediate trees.
func CompileWorkout(src string) (*Result, error) {
	w, err := Parse(src)
	if err != nil {
		return nil, err
	}
	nw, err := Normalize(w)
	if err != nil {
		return nil, err
	}
	return &Result{Workout: w, Normalized: nw, Document: Emit(nw)}, nil
}

// Compile turns a workout specification into its emitted document.
func Compile(src string) (*Document, error) {
	res, err := CompileWorkout(src)
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}

// FormatDuration renders seconds as h:mm:ss.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
