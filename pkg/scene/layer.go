package scene

// Container is the capability generators need from a scene container.
type Container interface {
	Append(p *Primitive)
	Clear()
}

// Layer is a named, ordered, in-memory container of primitives of one kind.
//
// Layers are owned by the single event-handling goroutine; a clear followed
// by a refill inside one call is never observed half-done by the renderer.
type Layer struct {
	name    string
	visible bool
	items   []*Primitive
}

// NewLayer creates an empty, visible layer.
func NewLayer(name string) *Layer {
	return &Layer{name: name, visible: true}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Append implements Container.
func (l *Layer) Append(p *Primitive) {
	l.items = append(l.items, p)
}

// Clear implements Container.
func (l *Layer) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Len returns the number of primitives.
func (l *Layer) Len() int { return len(l.items) }

// Primitives returns the layer contents in insertion order. The slice must
// not be modified.
func (l *Layer) Primitives() []*Primitive { return l.items }

// Visible reports whether the layer is drawn.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible shows or hides the layer without touching its population.
func (l *Layer) SetVisible(v bool) { l.visible = v }
