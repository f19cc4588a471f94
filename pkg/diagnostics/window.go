// Package diagnostics feeds the on-screen info panel: a rolling frame-time
// average, frame counters and a summary of the simulation state.
package diagnostics

// WindowSize is the number of frame times averaged
const WindowSize = 64

// FrameWindow is a fixed-size ring of recent frame times in seconds
type FrameWindow struct {
	samples [WindowSize]float32
	next    int
	filled  int
	frames  uint64
	last    float32
}

// Push records one frame time. Negative and NaN values count as zero.
func (w *FrameWindow) Push(dt float32) {
	if !(dt > 0) {
		dt = 0
	}
	if w.filled < WindowSize {
		w.filled++
	}
	w.samples[w.next] = dt
	w.next = (w.next + 1) % WindowSize
	w.frames++
	w.last = dt
}

// Len returns the number of samples held, at most WindowSize
func (w *FrameWindow) Len() int {
	return w.filled
}

// Frames returns the number of frames pushed since creation
func (w *FrameWindow) Frames() uint64 {
	return w.frames
}

// Average returns the mean frame time over the window in seconds
func (w *FrameWindow) Average() float32 {
	if w.filled == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < w.filled; i++ {
		sum += w.samples[i]
	}
	return sum / float32(w.filled)
}

// FPS returns the reciprocal of the average frame time, or 0 with no samples
func (w *FrameWindow) FPS() float32 {
	avg := w.Average()
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

// Last returns the most recent frame time in seconds
func (w *FrameWindow) Last() float32 {
	return w.last
}
