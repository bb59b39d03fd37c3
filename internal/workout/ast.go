package workout

import (
	"fmt"
	"strings"
)

// TimeUnit is the unit suffix of a duration.
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Minutes
	Hours
)

// Factor returns the number of seconds in one unit.
func (u TimeUnit) Factor() float64 {
	switch u {
	case Hours:
		return 3600
	case Minutes:
		return 60
	default:
		return 1
	}
}

func (u TimeUnit) String() string {
	switch u {
	case Hours:
		return "h"
	case Minutes:
		return "m"
	default:
		return "s"
	}
}

// PowerKind selects how a block's target power is expressed.
type PowerKind int

const (
	Steady   PowerKind = iota // single wattage
	Range                     // linear ramp from Watts to EndWatts
	FreeRide                  // "_", no target
)

func (k PowerKind) String() string {
	switch k {
	case Range:
		return "range"
	case FreeRide:
		return "free"
	default:
		return "steady"
	}
}

// Stage is implemented by every node of the abstract workout tree.
type Stage interface {
	stageNode()
	String() string
}

// Time is a duration as written: magnitude and unit.
//
//	0.5h
//	^^^^  Time{Magnitude: 0.5, Unit: Hours, Literal: "0.5"}
type Time struct {
	Magnitude float64
	Unit      TimeUnit
	Literal   string // the number as written, kept for rendering
}

func (t Time) String() string {
	return t.Literal + t.Unit.String()
}

// Power is the target of a block in absolute watts.
type Power struct {
	Kind     PowerKind
	Watts    int
	EndWatts int // only for Range
}

func (p Power) String() string {
	switch p.Kind {
	case FreeRide:
		return "_"
	case Range:
		return fmt.Sprintf("%dw-%dw", p.Watts, p.EndWatts)
	default:
		return fmt.Sprintf("%dw", p.Watts)
	}
}

// Block is a single timed segment.
//
//	30m@200w
//	^^^ ^^^^
//	|   Power
//	Time
type Block struct {
	Time  Time
	Power Power
}

func (*Block) stageNode() {}
func (b *Block) String() string {
	return b.Time.String() + "@" + b.Power.String()
}

// Repeat runs its body Count times. Count may be zero.
//
//	9*(30s@290w + 30s@100w)
type Repeat struct {
	Count int
	Body  []Stage
}

func (*Repeat) stageNode() {}
func (r *Repeat) String() string {
	return fmt.Sprintf("%d*(%s)", r.Count, joinStages(r.Body))
}

// Workout is the root of the abstract workout tree.
type Workout struct {
	Stages []Stage
	FTP    int
	FTPPos int    // byte offset of the FTP number
	Source string // the text the tree was parsed from
}

// String renders the canonical notation, e.g. "2*(5m@180w + 30s@_) | 250w".
func (w *Workout) String() string {
	return fmt.Sprintf("%s | %dw", joinStages(w.Stages), w.FTP)
}

func joinStages(stages []Stage) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = s.String()
	}
	return strings.Join(parts, " + ")
}
