// =======================
// cube/point3d.go
// =======================

package cube

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Translate shifts the point by d on every axis.
func (p *Point3D) Translate(d float64) {
	p.X += d
	p.Y += d
	p.Z += d
}

// RotateZ rotates (X, Y) around the pivot's (X, Y).
func (p *Point3D) RotateZ(pivot Point3D, angle float64) {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	p.X = dx*cos - dy*sin + pivot.X
	p.Y = dx*sin + dy*cos + pivot.Y
}

// RotateX rotates (Y, Z) around the pivot's (Y, Z).
func (p *Point3D) RotateX(pivot Point3D, angle float64) {
	sin, cos := math.Sincos(angle)
	dy := p.Y - pivot.Y
	dz := p.Z - pivot.Z
	p.Y = dy*cos - dz*sin + pivot.Y
	p.Z = dy*sin + dz*cos + pivot.Z
}

// RotateY rotates (X, Z) around the pivot's (X, Z).
// x' = z·sin + x·cos, z' = z·cos − x·sin.
func (p *Point3D) RotateY(pivot Point3D, angle float64) {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dz := p.Z - pivot.Z
	p.X = dz*sin + dx*cos + pivot.X
	p.Z = dz*cos - dx*sin + pivot.Z
}

// Spin applies the per-frame rotation sequence: Z, then X, then Y.
func (p *Point3D) Spin(pivot Point3D, az, ax, ay float64) {
	p.RotateZ(pivot, az)
	p.RotateX(pivot, ax)
	p.RotateY(pivot, ay)
}

// centroid returns the mean of pts.
func centroid(pts []Point3D) Point3D {
	var c Point3D
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(pts))
	return Point3D{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}
