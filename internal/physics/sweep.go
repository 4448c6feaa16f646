package physics

import "math"

// SegmentHitsCircle reports whether the segment p0→p1 passes within
// radius of center at any point. This is the continuous-time collision
// primitive behind landing, goal entry, and black-hole lethality: it
// catches bodies that cross a circle entirely within one step, so
// collision stays correct at any frame rate or speed.
//
// Solved as the standard quadratic in the segment parameter t:
// a real root in [0,1], or a root interval spanning it, is a hit. A
// zero-length segment degenerates to a point-in-circle test.
func SegmentHitsCircle(p0, p1, center Vec2, radius float64) bool {
	d := p1.Sub(p0)
	a := d.LenSq()
	if a == 0 {
		return p0.DistanceSq(center) <= radius*radius
	}

	f := p0.Sub(center)
	b := 2 * f.Dot(d)
	c := f.LenSq() - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	if t1 >= 0 && t1 <= 1 {
		return true
	}
	if t2 >= 0 && t2 <= 1 {
		return true
	}
	// Segment starts and ends inside the circle.
	return t1 < 0 && t2 > 1
}

// Wrap teleports a position to the opposite edge of the bounds on each
// axis independently. The second return reports whether any wrap fired;
// callers must then reset the swept-collision previous position, or the
// next step would read the teleport as real travel across the canvas.
func Wrap(pos Vec2, bounds Vec2) (Vec2, bool) {
	wrapped := false
	if pos.X < 0 {
		pos.X += bounds.X
		wrapped = true
	} else if pos.X > bounds.X {
		pos.X -= bounds.X
		wrapped = true
	}
	if pos.Y < 0 {
		pos.Y += bounds.Y
		wrapped = true
	} else if pos.Y > bounds.Y {
		pos.Y -= bounds.Y
		wrapped = true
	}
	return pos, wrapped
}
