package workout

// RecordKind tags the emission-ready record variants.
type RecordKind int

const (
	SteadyRecord RecordKind = iota
	RampRecord
	FreeRideRecord
	IntervalRecord
)

func (k RecordKind) String() string {
	switch k {
	case RampRecord:
		return "ramp"
	case FreeRideRecord:
		return "free"
	case IntervalRecord:
		return "intervals"
	default:
		return "steady"
	}
}

// Record is one entry of the emitted stage sequence. Powers are FTP ratios.
type Record interface {
	Kind() RecordKind
	Seconds() int
}

// SteadyBlock holds a constant target.
type SteadyBlock struct {
	Duration int
	Power    float64
}

func (SteadyBlock) Kind() RecordKind { return SteadyRecord }
func (b SteadyBlock) Seconds() int   { return b.Duration }

// RampBlock moves linearly from Start to End.
type RampBlock struct {
	Duration int
	Start    float64
	End      float64
}

func (RampBlock) Kind() RecordKind { return RampRecord }
func (b RampBlock) Seconds() int   { return b.Duration }

// FreeRideBlock has no target.
type FreeRideBlock struct {
	Duration int
}

func (FreeRideBlock) Kind() RecordKind { return FreeRideRecord }
func (b FreeRideBlock) Seconds() int   { return b.Duration }

// RepeatedInterval is the native on/off repeat construct.
type RepeatedInterval struct {
	Count       int
	OnDuration  int
	OnPower     float64
	OffDuration int
	OffPower    float64
}

func (RepeatedInterval) Kind() RecordKind { return IntervalRecord }
func (r RepeatedInterval) Seconds() int {
	return r.Count * (r.OnDuration + r.OffDuration)
}

// Expand returns the 2*Count steady blocks the interval stands for.
func (r RepeatedInterval) Expand() []Record {
	out := make([]Record, 0, 2*r.Count)
	for i := 0; i < r.Count; i++ {
		out = append(out,
			SteadyBlock{Duration: r.OnDuration, Power: r.OnPower},
			SteadyBlock{Duration: r.OffDuration, Power: r.OffPower})
	}
	return out
}

// Document is the emitter output handed to serializers.
type Document struct {
	FTP     int
	Records []Record
}

// TotalSeconds is the duration of the whole workout.
func (d *Document) TotalSeconds() int {
	total := 0
	for _, r := range d.Records {
		total += r.Seconds()
	}
	return total
}

// Len returns the number of top-level records.
func (d *Document) Len() int {
	return len(d.Records)
}

// Compact decides whether r can be represented by a single RepeatedInterval:
// a non-zero count over a body of exactly two blocks with fixed power.
func Compact(r *NRepeat) (RepeatedInterval, bool) {
	if r.Count <= 0 || len(r.Body) != 2 {
		return RepeatedInterval{}, false
	}
	on, ok := r.Body[0].(*NBlock)
	if !ok || on.Power.Kind != Steady {
		return RepeatedInterval{}, false
	}
	off, ok := r.Body[1].(*NBlock)
	if !ok || off.Power.Kind != Steady {
		return RepeatedInterval{}, false
	}
	return RepeatedInterval{
		Count:       r.Count,
		OnDuration:  on.Seconds,
		OnPower:     on.Power.Ratio,
		OffDuration: off.Seconds,
		OffPower:    off.Power.Ratio,
	}, true
}

type emitter struct {
	compact bool
}

// Emit linearizes nw, compacting every repeat whose body allows it.
func Emit(nw *NormalizedWorkout) *Document {
	e := emitter{compact: true}
	return &Document{FTP: nw.FTP, Records: e.emitStages(nw.Stages)}
}

// Unroll linearizes nw without compaction.
func Unroll(nw *NormalizedWorkout) *Document {
	e := emitter{compact: false}
	return &Document{FTP: nw.FTP, Records: e.emitStages(nw.Stages)}
}

func (e emitter) emitStages(stages []NStage) []Record {
	var out []Record
	for _, s := range stages {
		out = append(out, e.emitStage(s)...)
	}
	return out
}

func (e emitter) emitStage(s NStage) []Record {
	switch s := s.(type) {
	case *NBlock:
		return []Record{blockRecord(s)}
	case *NRepeat:
		if s.Count == 0 {
			return nil
		}
		if e.compact {
			if ri, ok := Compact(s); ok {
				return []Record{ri}
			}
		}
		// nested repeats are re-evaluated on their own
		body := e.emitStages(s.Body)
		out := make([]Record, 0, len(body)*s.Count)
		for i := 0; i < s.Count; i++ {
			out = append(out, body...)
		}
		return out
	default:
		return nil
	}
}

func blockRecord(b *NBlock) Record {
	switch b.Power.Kind {
	case FreeRide:
		return FreeRideBlock{Duration: b.Seconds}
	case Range:
		return RampBlock{Duration: b.Seconds, Start: b.Power.Ratio, End: b.Power.EndRatio}
	default:
		return SteadyBlock{Duration: b.Seconds, Power: b.Power.Ratio}
	}
}

// Flatten expands every RepeatedInterval so the result holds no repeat construct.
func Flatten(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if ri, ok := r.(RepeatedInterval); ok {
			out = append(out, ri.Expand()...)
			continue
		}
		out = append(out, r)
	}
	return out
}
