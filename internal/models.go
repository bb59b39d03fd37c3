package internal

import (
	"errors"
	"strings"
	"time"

	"github.com/iksnae/zwift-workout/internal/workout"
)

// WorkoutMeta carries the document fields that do not come from the notation.
type WorkoutMeta struct {
	Name        string
	Author      string
	Description string
	SportType   string
	Tags        []string
	Precision   int
}

// MetaFromConfig fills the configurable fields of a WorkoutMeta.
func MetaFromConfig(cfg *Config, name string) WorkoutMeta {
	return WorkoutMeta{
		Name:      name,
		Author:    cfg.Author,
		SportType: cfg.SportType,
		Tags:      cfg.Tags,
		Precision: cfg.Precision,
	}
}

// CompiledWorkout is a successfully compiled specification plus its metadata;
// it is the unit every exporter consumes.
type CompiledWorkout struct {
	WorkoutMeta
	Source     string
	Canonical  string // normalized re-rendering of Source
	Workout    *workout.Workout
	Normalized *workout.NormalizedWorkout
	Document   *workout.Document
}

// CompileWorkout compiles src and attaches meta. An empty description
// defaults to the canonical notation.
func CompileWorkout(src string, meta WorkoutMeta) (*CompiledWorkout, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &InputError{Err: errors.New("workout specification must not be empty")}
	}
	res, err := workout.CompileWorkout(src)
	if err != nil {
		return nil, err
	}
	canonical := res.Workout.String()
	if meta.Description == "" {
		meta.Description = canonical
	}
	if meta.SportType == "" {
		meta.SportType = "bike"
	}
	return &CompiledWorkout{
		WorkoutMeta: meta,
		Source:      src,
		Canonical:   canonical,
		Workout:     res.Workout,
		Normalized:  res.Normalized,
		Document:    res.Document,
	}, nil
}

// FTP returns the reference power in watts.
func (c *CompiledWorkout) FTP() int {
	return c.Document.FTP
}

// TotalSeconds returns the workout duration.
func (c *CompiledWorkout) TotalSeconds() int {
	return c.Document.TotalSeconds()
}

// LibraryEntry is a workout stored in the library
type LibraryEntry struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Author       string    `json:"author,omitempty" yaml:"author,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Source       string    `json:"source" yaml:"source"`
	Canonical    string    `json:"canonical" yaml:"canonical"`
	Hash         string    `json:"hash" yaml:"hash"`
	FTP          int       `json:"ftp" yaml:"ftp"`
	TotalSeconds int       `json:"total_seconds" yaml:"total_seconds"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// ShortID returns the first eight characters of the id, enough to address an entry.
func (e *LibraryEntry) ShortID() string {
	if len(e.ID) > 8 {
		return e.ID[:8]
	}
	return e.ID
}

// Meta returns the stored metadata, completed with configurable fields from cfg.
func (e *LibraryEntry) Meta(cfg *Config) WorkoutMeta {
	meta := MetaFromConfig(cfg, e.Name)
	meta.Author = e.Author
	meta.Description = e.Description
	return meta
}
