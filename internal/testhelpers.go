package internal

// SampleWorkoutSource exercises every record kind: a ramp, a compacted
// interval, an unrolled repeat and a free ride.
const SampleWorkoutSource = "10m@100w-190w + 9*(30s@290w + 30s@100w) + 2*(1m@300w + 1m@200w + 1m@100w) + 5m@190w-150w + 10m@_ | 250w"

// CreateTestWorkout compiles src with test metadata. It panics on invalid
// input, so only use it with known-good specifications.
func CreateTestWorkout(name, src string) *CompiledWorkout {
	cw, err := CompileWorkout(src, WorkoutMeta{
		Name:      name,
		Author:    "Test Author",
		SportType: "bike",
		Tags:      []string{"test"},
		Precision: -1,
	})
	if err != nil {
		panic("CreateTestWorkout: " + err.Error())
	}
	return cw
}

// CreateSampleWorkout returns the compiled SampleWorkoutSource.
func CreateSampleWorkout() *CompiledWorkout {
	return CreateTestWorkout("Sample", SampleWorkoutSource)
}
