package geom

import "errors"

// Authoring rejections. These are precondition failures, not faults:
// the caller surfaces the message and retries with corrected input.
var (
	ErrNotIsothetic   = errors.New("not horizontal or vertical from last point")
	ErrTooFewVertices = errors.New("polygon must have at least 3 points")
	ErrNotClosed      = errors.New("polygon must be closed by selecting the starting point")
	ErrAlreadyClosed  = errors.New("polygon is already closed")
)

// BuilderState tags the authoring lifecycle of a single ring.
type BuilderState int

const (
	StateEmpty BuilderState = iota
	StateBuilding
	StateClosed
)

// Builder assembles one isothetic ring a vertex at a time, validating
// each step against the previous vertex and detecting closure against
// the first. The zero value is ready to use.
type Builder struct {
	state BuilderState
	pts   Ring
}

func (b *Builder) State() BuilderState { return b.state }
func (b *Builder) Len() int            { return len(b.pts) }

// Vertices returns the committed vertices. The slice is owned by the
// builder and only valid until the next mutating call.
func (b *Builder) Vertices() Ring { return b.pts }

// Append commits one vertex. While building, the step from the prior
// vertex must be axis-aligned; a vertex coinciding with the first one
// closes the ring (the duplicate is not stored) once at least three
// vertices are committed.
func (b *Builder) Append(p Point) error {
	switch b.state {
	case StateClosed:
		return ErrAlreadyClosed
	case StateBuilding:
		last := b.pts[len(b.pts)-1]
		if !IsIsotheticStep(last, p) {
			return ErrNotIsothetic
		}
		if IsClosing(p, b.pts[0]) {
			if len(b.pts) < 3 {
				return ErrTooFewVertices
			}
			b.state = StateClosed
			return nil
		}
		b.pts = append(b.pts, p)
	default:
		b.pts = append(b.pts, p)
		b.state = StateBuilding
	}
	return nil
}

// RemoveLast drops the most recently committed vertex. Removing the
// only vertex returns the builder to the empty state; a closed ring
// reopens to building first.
func (b *Builder) RemoveLast() (Point, bool) {
	if len(b.pts) == 0 {
		return Point{}, false
	}
	if b.state == StateClosed {
		b.state = StateBuilding
		return b.pts[0], true // the closing vertex duplicates the first
	}
	p := b.pts[len(b.pts)-1]
	b.pts = b.pts[:len(b.pts)-1]
	if len(b.pts) == 0 {
		b.state = StateEmpty
	}
	return p, true
}

// Finalize returns the completed ring and resets the builder. A ring
// that has not been closed back onto its starting vertex is rejected.
func (b *Builder) Finalize() (Ring, error) {
	if len(b.pts) < 3 {
		return nil, ErrTooFewVertices
	}
	if b.state != StateClosed {
		return nil, ErrNotClosed
	}
	ring := b.pts
	b.Reset()
	return ring, nil
}

// Reset discards all committed vertices.
func (b *Builder) Reset() {
	b.pts = nil
	b.state = StateEmpty
}
