package particle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sampler draws bounded random scalars (position, radius, duration, delay,
// jitter) for the scene generators. min <= max is assumed by callers.
type Sampler interface {
	Uniform(min, max float64) float64
}

// RandSampler draws from the package-level math/rand source. It is never
// seeded explicitly, so scenes differ between runs.
type RandSampler struct{}

// Uniform implements Sampler.
func (RandSampler) Uniform(min, max float64) float64 {
	return RandomInRange(min, max)
}

// Range is a closed interval sampled once per generated primitive.
type Range struct {
	Min float64
	Max float64
}

// R is shorthand for Range{Min: min, Max: max}.
func R(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Sample draws a value from r using s.
func (r Range) Sample(s Sampler) float64 {
	return s.Uniform(r.Min, r.Max)
}

// Valid reports whether r is ordered.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("[%g]", r.Min)
	}
	return fmt.Sprintf("[%g %g]", r.Min, r.Max)
}

// MarshalText encodes r in the bracketed configuration form.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts "[min max]", "[v]" or "v". TOML configuration goes
// through this path.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalYAML accepts the quoted string forms plus a YAML flow sequence
// such as [1, 3].
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var values []float64
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch len(values) {
		case 1:
			*r = Range{Min: values[0], Max: values[0]}
		case 2:
			*r = Range{Min: values[0], Max: values[1]}
		default:
			return fmt.Errorf("line %d: range wants 1 or 2 values, got %d", node.Line, len(values))
		}
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return r.UnmarshalText([]byte(s))
}
