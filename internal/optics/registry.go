package optics

import "slices"

// Registry holds every body in the scene in insertion order.
type Registry struct {
	bodies []Body
}

func (r *Registry) Add(b Body) {
	r.bodies = append(r.bodies, b)
}

// Remove deletes b. It is a no-op for absent or non-removable bodies
// and reports whether anything was removed.
func (r *Registry) Remove(b Body) bool {
	if !b.Removable() {
		return false
	}
	i := slices.Index(r.bodies, b)
	if i < 0 {
		return false
	}
	r.bodies = slices.Delete(r.bodies, i, i+1)
	return true
}

func (r *Registry) Contains(b Body) bool { return slices.Contains(r.bodies, b) }

func (r *Registry) Len() int { return len(r.bodies) }

// Bodies returns a snapshot; later Add or Remove calls do not affect it.
func (r *Registry) Bodies() []Body { return slices.Clone(r.bodies) }

// First returns the first body, in insertion order, matching fn.
func (r *Registry) First(fn func(Body) bool) Body {
	for _, b := range r.bodies {
		if fn(b) {
			return b
		}
	}
	return nil
}

// Emitters returns the emitters in insertion order.
func (r *Registry) Emitters() []*Emitter {
	var out []*Emitter
	for _, b := range r.bodies {
		if e, ok := b.(*Emitter); ok {
			out = append(out, e)
		}
	}
	return out
}
