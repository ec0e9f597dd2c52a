package anim

// Point is a 2D point in layer coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Lerp linearly interpolates between p and q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Point3D is a 3D point used by camera and 3D layer transforms.
type Point3D struct {
	X, Y, Z float32
}

// Lerp linearly interpolates between p and q.
func (p Point3D) Lerp(q Point3D, t float32) Point3D {
	return Point3D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Color is an opaque 8-bit RGB color. Opacity is animated separately.
type Color struct {
	R, G, B uint8
}

// Lerp interpolates each channel and rounds to the nearest value.
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		R: lerpChannel(c.R, d.R, t),
		G: lerpChannel(c.G, d.G, t),
		B: lerpChannel(c.B, d.B, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	v := float32(a) + (float32(b)-float32(a))*t + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// PathData is an animatable bezier path: one vertex per point with its
// incoming and outgoing tangents relative to the vertex.
type PathData struct {
	Vertices    []Point
	InTangents  []Point
	OutTangents []Point
	Closed      bool
}

// Len returns the number of vertices.
func (p *PathData) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Vertices)
}

// Lerp interpolates vertex by vertex. Paths with different vertex counts
// cannot morph; the start path is held instead.
func (p *PathData) Lerp(q *PathData, t float32) *PathData {
	if p.Len() != q.Len() || len(p.InTangents) != len(q.InTangents) ||
		len(p.OutTangents) != len(q.OutTangents) {
		return p
	}
	out := &PathData{
		Vertices:    make([]Point, len(p.Vertices)),
		InTangents:  make([]Point, len(p.InTangents)),
		OutTangents: make([]Point, len(p.OutTangents)),
		Closed:      p.Closed,
	}
	for i := range p.Vertices {
		out.Vertices[i] = p.Vertices[i].Lerp(q.Vertices[i], t)
	}
	for i := range p.InTangents {
		out.InTangents[i] = p.InTangents[i].Lerp(q.InTangents[i], t)
	}
	for i := range p.OutTangents {
		out.OutTangents[i] = p.OutTangents[i].Lerp(q.OutTangents[i], t)
	}
	return out
}
