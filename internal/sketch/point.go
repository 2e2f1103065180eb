package sketch

import "math"

// Point is a position in canvas coordinates. The origin is the top-left
// corner and y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
