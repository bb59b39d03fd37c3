package workout

import (
	"fmt"
	"math"
)

// NStage is a node of the normalized workout tree.
type NStage interface {
	nstageNode()
}

// NPower is a target expressed relative to FTP. Ratios are never rounded here.
type NPower struct {
	Kind     PowerKind
	Ratio    float64 // Steady target, or Range start
	EndRatio float64 // Range end
	Watts    int
	EndWatts int
}

// NBlock is a block whose duration is whole seconds.
type NBlock struct {
	Seconds int
	Power   NPower
}

func (*NBlock) nstageNode() {}

// NRepeat is a normalized repeat. A zero Count contributes nothing when emitted.
type NRepeat struct {
	Count int
	Body  []NStage
}

func (*NRepeat) nstageNode() {}

// NormalizedWorkout is the output of Normalize. It shares nothing with the source tree.
type NormalizedWorkout struct {
	FTP    int
	Stages []NStage
}

// Normalizer converts an abstract workout tree into its normalized form.
type Normalizer struct {
	ftp float64
}

// NewNormalizer creates a Normalizer for the given FTP.
func NewNormalizer(ftp int) *Normalizer {
	return &Normalizer{ftp: float64(ftp)}
}

// Normalize converts every duration to seconds and every wattage to a fraction of FTP.
func Normalize(w *Workout) (*NormalizedWorkout, error) {
	if w == nil {
		return nil, fmt.Errorf("workout is nil")
	}
	if w.FTP <= 0 {
		return nil, newError(InvalidFTP, w.Source, w.FTPPos, w.FTPPos,
			"FTP must be a positive number of watts")
	}
	n := NewNormalizer(w.FTP)
	return &NormalizedWorkout{FTP: w.FTP, Stages: n.normalizeStages(w.Stages)}, nil
}

func (n *Normalizer) normalizeStages(stages []Stage) []NStage {
	out := make([]NStage, 0, len(stages))
	for _, s := range stages {
		out = append(out, n.normalizeStage(s))
	}
	return out
}

func (n *Normalizer) normalizeStage(s Stage) NStage {
	switch s := s.(type) {
	case *Block:
		return &NBlock{Seconds: NormalizeTime(s.Time), Power: n.normalizePower(s.Power)}
	case *Repeat:
		// zero-count bodies are still normalized so the tree stays complete
		return &NRepeat{Count: s.Count, Body: n.normalizeStages(s.Body)}
	default:
		panic(fmt.Sprintf("workout: unknown stage type %T", s))
	}
}

func (n *Normalizer) normalizePower(p Power) NPower {
	switch p.Kind {
	case FreeRide:
		return NPower{Kind: FreeRide}
	case Range:
		return NPower{
			Kind:     Range,
			Ratio:    n.ratio(p.Watts),
			EndRatio: n.ratio(p.EndWatts),
			Watts:    p.Watts,
			EndWatts: p.EndWatts,
		}
	default:
		return NPower{Kind: Steady, Ratio: n.ratio(p.Watts), Watts: p.Watts}
	}
}

func (n *Normalizer) ratio(watts int) float64 {
	return float64(watts) / n.ftp
}

// NormalizeTime returns the whole number of seconds for t, rounding half away from zero.
func NormalizeTime(t Time) int {
	return int(math.Round(t.Magnitude * t.Unit.Factor()))
}
