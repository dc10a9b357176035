package recording

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc from the current point to Point.
//
// The arc is given in SVG endpoint form. Two circles of the given radius
// pass through both endpoints, and each offers a minor and a major arc;
// LargeArc selects the major one and Sweep selects the circle traversed
// clockwise (positive-angle direction in a y-down coordinate system).
type ArcTo struct {
	Radius   float64
	LargeArc bool
	Sweep    bool
	Point    Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc of the given radius to (x, y).
func (p *Path) ArcTo(radius float64, largeArc, sweep bool, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, ArcTo{
		Radius:   radius,
		LargeArc: largeArc,
		Sweep:    sweep,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
// Arc radii are scaled by the matrix's ScaleFactor; a non-uniform scale
// turns circular arcs into elliptical ones, which Path cannot express.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	s := m.ScaleFactor()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case ArcTo:
			pt := m.TransformPoint(e.Point)
			sweep := e.Sweep
			if m.A*m.E-m.B*m.D < 0 {
				// Reflections reverse the traversal direction.
				sweep = !sweep
			}
			result.ArcTo(e.Radius*s, e.LargeArc, sweep, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}
