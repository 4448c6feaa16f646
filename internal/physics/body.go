package physics

import "math"

// Body is the single mobile entity in the simulation. It is either
// pinned to a planet's surface (angular motion only, position derived
// from the angle every step) or in free ballistic flight (velocity
// integrated under the summed force law).
type Body struct {
	Pos  Vec2 // Current position
	Prev Vec2 // Position at the start of this step; swept collision only
	Vel  Vec2 // Velocity; meaningful only in flight

	OnSurface bool // Surface mode vs flight mode
	SourceIdx int  // Index into World.Planets; valid only while OnSurface

	Angle        float64 // Orientation around the occupied planet
	AngularSpeed float64 // rad/s, signed; clamped to ±BaseAngularSpeed

	Launched bool // Blocks repeat launches until the next landing

	Radius float64
}

// NewBody creates a body standing on the given planet at the angle
// subtended by start. The body starts in surface mode with no motion.
func NewBody(w *World, start Vec2, p Params) Body {
	b := Body{
		OnSurface: true,
		SourceIdx: 0,
		Radius:    p.BodyRadius,
	}
	if len(w.Planets) > 0 {
		anchor := &w.Planets[0]
		b.Angle = math.Atan2(start.Y-anchor.Pos.Y, start.X-anchor.Pos.X)
		b.snapToSurface(anchor, p)
	} else {
		b.Pos = start
		b.Prev = start
	}
	return b
}

// Occupied returns the planet the body is standing on, or nil in
// flight.
func (b *Body) Occupied(w *World) *Source {
	if !b.OnSurface || b.SourceIdx < 0 || b.SourceIdx >= len(w.Planets) {
		return nil
	}
	return &w.Planets[b.SourceIdx]
}

// SpeedRatio returns |angular speed| as a fraction of the full running
// speed, for UI speed meters. At EscapeThreshold and above a launch
// separates from the well.
func (b *Body) SpeedRatio(p Params) float64 {
	if p.BaseAngularSpeed == 0 {
		return 0
	}
	return math.Abs(b.AngularSpeed) / p.BaseAngularSpeed
}

// OrbitalRadius returns the distance from the occupied planet's center
// to the body's center while running on src.
func (b *Body) OrbitalRadius(src *Source, p Params) float64 {
	return src.Radius + b.Radius + p.SurfaceMargin
}

// snapToSurface derives the body's position from its angle on src.
// Position is recomputed, never integrated, so the body cannot drift
// off the surface numerically.
func (b *Body) snapToSurface(src *Source, p Params) {
	orbit := b.OrbitalRadius(src, p)
	b.Pos = src.Pos.Add(Vec2{X: math.Cos(b.Angle), Y: math.Sin(b.Angle)}.Scale(orbit))
	b.Prev = b.Pos
}

// stepSurface advances one tick of surface running: angular speed moves
// toward the input's target at a bounded rate, the angle integrates,
// and the position is re-derived from the occupied planet.
func (b *Body) stepSurface(w *World, in Input, dt float64, p Params) {
	src := b.Occupied(w)
	if src == nil {
		return
	}

	var target float64
	switch {
	case in.Left && in.Right:
		target = 0 // Both held brakes to a stop
	case in.Right:
		target = p.BaseAngularSpeed
	case in.Left:
		target = -p.BaseAngularSpeed
	}

	rate := p.AngularAccel
	if !in.Left && !in.Right {
		rate = p.AngularDecel
	}

	b.AngularSpeed = approach(b.AngularSpeed, target, rate*dt)
	if b.AngularSpeed > p.BaseAngularSpeed {
		b.AngularSpeed = p.BaseAngularSpeed
	} else if b.AngularSpeed < -p.BaseAngularSpeed {
		b.AngularSpeed = -p.BaseAngularSpeed
	}

	b.Angle += b.AngularSpeed * dt
	b.snapToSurface(src, p)
}

// launch transitions the body from surface to flight. Velocity is the
// signed tangential component plus a fixed radial push away from the
// well, so a standing launch still separates instead of re-colliding.
func (b *Body) launch(w *World, p Params) {
	src := b.Occupied(w)
	if src == nil {
		return
	}

	orbit := b.OrbitalRadius(src, p)
	radial := Vec2{X: math.Cos(b.Angle), Y: math.Sin(b.Angle)}
	tangent := Vec2{X: -math.Sin(b.Angle), Y: math.Cos(b.Angle)}

	b.Vel = tangent.Scale(b.AngularSpeed * orbit).Add(radial.Scale(p.LaunchPush))
	b.Prev = b.Pos
	b.OnSurface = false
	b.SourceIdx = -1
	b.Launched = true
}

// land pins the body onto planet idx at the angle subtended by the
// contact point. All motion state resets; the launch gate reopens.
func (b *Body) land(w *World, idx int, p Params) {
	src := &w.Planets[idx]
	b.Angle = math.Atan2(b.Pos.Y-src.Pos.Y, b.Pos.X-src.Pos.X)
	b.OnSurface = true
	b.SourceIdx = idx
	b.Vel = Vec2{}
	b.AngularSpeed = 0
	b.Launched = false
	b.snapToSurface(src, p)
}

// stepFlight advances one tick of ballistic flight: semi-implicit Euler
// under the summed force law, then the screen wrap. The gravity
// multiplier is read from tun here, on every evaluation, so live
// configuration changes apply on the next step.
func (b *Body) stepFlight(w *World, dt float64, tun Tuning, p Params) {
	b.Prev = b.Pos

	force := w.ForceAt(b.Pos, p, tun.GravityMultiplier)
	b.Vel = b.Vel.Add(force.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	pos, wrapped := Wrap(b.Pos, w.Bounds)
	b.Pos = pos
	if wrapped {
		// The teleport is not real travel; the swept test must not see it.
		b.Prev = b.Pos
	}
}

// findLanding returns the index of the first planet (in level order)
// the body contacts this step, or -1. Contact is either the end
// position inside the combined radius or the motion segment sweeping
// through it; the sweep catches planets crossed entirely within one
// step. Only planets land; the goal and black holes are classified by
// the step evaluator.
func (b *Body) findLanding(w *World) int {
	for i := range w.Planets {
		pl := &w.Planets[i]
		combined := pl.Radius + b.Radius
		if b.Pos.DistanceSq(pl.Pos) <= combined*combined {
			return i
		}
		if SegmentHitsCircle(b.Prev, b.Pos, pl.Pos, combined) {
			return i
		}
	}
	return -1
}

// approach moves cur toward target by at most delta.
func approach(cur, target, delta float64) float64 {
	if cur < target {
		cur += delta
		if cur > target {
			cur = target
		}
	} else if cur > target {
		cur -= delta
		if cur < target {
			cur = target
		}
	}
	return cur
}
