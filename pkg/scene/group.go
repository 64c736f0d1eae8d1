package scene

// Group is a transform node that owns group-level animations, e.g. the
// rotational sway of a flower.
type Group struct {
	ID         string
	X, Y       float64
	Scale      float64
	Animations []Animation
}

// NewGroup creates a group translated to (x, y) and scaled by scale.
func NewGroup(id string, x, y, scale float64) *Group {
	return &Group{ID: id, X: x, Y: y, Scale: scale}
}

// Attach appends an animation.
func (g *Group) Attach(a Animation) {
	g.Animations = append(g.Animations, a)
}

// CountClass returns how many attached animations carry class.
func (g *Group) CountClass(class string) int {
	n := 0
	for _, a := range g.Animations {
		if kf, ok := a.(*Keyframes); ok && kf.Class == class {
			n++
		}
	}
	return n
}

// RemoveClass detaches every animation tagged class and returns how many
// were removed.
func (g *Group) RemoveClass(class string) int {
	kept := g.Animations[:0]
	removed := 0
	for _, a := range g.Animations {
		if kf, ok := a.(*Keyframes); ok && kf.Class == class {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	clear(g.Animations[len(kept):])
	g.Animations = kept
	return removed
}

// RotationAt returns the group rotation in degrees at scene time t.
func (g *Group) RotationAt(t float64) float64 {
	rotation := 0.0
	for _, a := range g.Animations {
		if a.Attribute() != AttrRotate {
			continue
		}
		progress, active := a.Clock().Progress(t)
		if !active {
			continue
		}
		if isAdditive(a) {
			rotation += a.ValueAt(progress)
		} else {
			rotation = a.ValueAt(progress)
		}
	}
	return rotation
}
