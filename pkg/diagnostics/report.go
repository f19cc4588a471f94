package diagnostics

import (
	"fmt"
	"time"
)

// Report is the advisory state shown by the info panel
type Report struct {
	Score       uint64        `json:"score"`
	FuelPercent float32       `json:"fuelPercent"` // relative to initial fuel, may exceed 100
	Fuel        float32       `json:"fuel"`
	FPS         float32       `json:"fps"`
	FrameAvg    time.Duration `json:"frameAvg"`
	Frame       time.Duration `json:"frame"`
	Frames      uint64        `json:"frames"`
	Elapsed     time.Duration `json:"elapsed"`
	NextFuelIn  time.Duration `json:"nextFuelIn"`
	Asteroids   int           `json:"asteroids"`
	FuelCans    int           `json:"fuelCans"`
}

// FuelPercent returns fuel as a percentage of initial, or 0 when initial is not positive
func FuelPercent(fuel, initial float32) float32 {
	if !(initial > 0) {
		return 0
	}
	return fuel / initial * 100
}

// Fields flattens the report into key/value pairs for structured logging
func (r Report) Fields() []any {
	return []any{
		"score", r.Score,
		"fuel", r.Fuel,
		"fuel_percent", r.FuelPercent,
		"fps", r.FPS,
		"frame_avg", r.FrameAvg,
		"frame", r.Frame,
		"frames", r.Frames,
		"elapsed", r.Elapsed,
		"next_fuel_in", r.NextFuelIn,
		"asteroids", r.Asteroids,
		"fuel_cans", r.FuelCans,
	}
}

// String renders the report the way the info panel prints it
func (r Report) String() string {
	return fmt.Sprintf("score: %d fuel: %.0f%% fps: %.0f (%.3fms, %.3fms) frames: %d time: %.3f",
		r.Score,
		r.FuelPercent,
		r.FPS,
		float64(r.FrameAvg)/float64(time.Millisecond),
		float64(r.Frame)/float64(time.Millisecond),
		r.Frames,
		r.Elapsed.Seconds(),
	)
}
