// Package particle provides the bounded-random parameter sampling and keyframe
// evaluation shared by every generated scene layer.
//
// Profile values are written in configuration files as either a fixed value
// ("3") or a range ("[1 3]"); a Range is sampled once per primitive when the
// primitive is created and never re-sampled afterwards.
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Keyframe represents a single keyframe in an animation curve.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Interpolation modes understood by EvaluateKeyframes.
const (
	InterpLinear  = "Linear"
	InterpEaseIn  = "EaseIn"
	InterpEaseOut = "EaseOut"
)

// ParseRange parses a value string from scene configuration.
// Supports:
//   - Fixed value: "1500" → min=1500, max=1500
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9
//   - Single bracketed value: "[2]" → min=2, max=2
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("range %q: missing closing bracket", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			return Range{Min: v, Max: v}, nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q: want 1 or 2 values, got %d", s, len(parts))
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	return Range{Min: v, Max: v}, nil
}

// EvenKeyframes spreads values evenly over normalized time, the way a
// "values" animation list is timed when no explicit key times are given.
func EvenKeyframes(values []float64) []Keyframe {
	if len(values) == 0 {
		return nil
	}
	if len(values) == 1 {
		return []Keyframe{{Time: 0, Value: values[0]}}
	}
	keyframes := make([]Keyframe, len(values))
	last := float64(len(values) - 1)
	for i, v := range values {
		keyframes[i] = Keyframe{Time: float64(i) / last, Value: v}
	}
	return keyframes
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Keyframes must be sorted by Time. Values before the first keyframe take the
// first value; values after the last keyframe take the last value.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case InterpEaseIn:
				ratio = ratio * ratio
			case InterpEaseOut:
				ratio = 1 - (1-ratio)*(1-ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rand.Float64()*(max-min)
}
