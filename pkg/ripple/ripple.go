// Package ripple drives the water-ripple distortion: a per-frame step that
// modulates the ripple frequency and re-arms itself on every display refresh
// until its handle is stopped.
package ripple

import (
	"log"
	"math"
)

const (
	BaseFrequency  = 0.01
	FrequencySwing = 0.005
	frequencyRate  = 0.01
	phaseRate      = 0.05
)

// FrameID identifies a pending frame callback.
type FrameID uint64

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Frequency returns the ripple frequency after frames steps.
func Frequency(frames int) float64 {
	return BaseFrequency + FrequencySwing*math.Sin(float64(frames)*frequencyRate)
}

// Offset returns the horizontal displacement of row y for a ripple of the
// given frequency, frame count and amplitude.
func Offset(freq float64, frames int, y, amplitude float64) float64 {
	return amplitude * math.Sin(2*math.Pi*freq*y+float64(frames)*phaseRate)
}

// Handle owns one running ripple step. Stop cancels the pending frame; it is
// safe to call more than once and on a nil handle.
type Handle struct {
	sched   Scheduler
	pending FrameID
	frames  int
	freq    float64
	stopped bool
	onStep  func(freq float64)
}

// Start runs the first step immediately and re-arms on every frame.
// onStep may be nil.
func Start(s Scheduler, onStep func(freq float64)) *Handle {
	h := &Handle{sched: s, onStep: onStep, freq: BaseFrequency}
	h.step()
	log.Printf("[Ripple] started")
	return h
}

func (h *Handle) step() {
	if h.stopped {
		return
	}
	h.frames++
	h.freq = Frequency(h.frames)
	if h.onStep != nil {
		h.onStep(h.freq)
	}
	h.pending = h.sched.RequestFrame(h.step)
}

// Stop cancels the pending frame.
func (h *Handle) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	h.sched.CancelFrame(h.pending)
	log.Printf("[Ripple] stopped after %d frames", h.frames)
}

// Running reports whether the step is still armed.
func (h *Handle) Running() bool { return h != nil && !h.stopped }

// Frames returns the number of steps run so far.
func (h *Handle) Frames() int { return h.frames }

// Frequency returns the frequency set by the latest step.
func (h *Handle) Frequency() float64 { return h.freq }
