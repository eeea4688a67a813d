package game

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// headingTo is the angle from pos toward target, also used by clients
// to orient sprites.
func headingTo(pos, target Vec2) float64 {
	return math.Atan2(target.Y-pos.Y, target.X-pos.X)
}

// stepToward advances pos by speed along the straight line to target.
// Constant-velocity seek; overshoot is handled by the collision phase.
func stepToward(pos, target Vec2, speed float64) Vec2 {
	angle := headingTo(pos, target)
	return Vec2{
		X: pos.X + math.Cos(angle)*speed,
		Y: pos.Y + math.Sin(angle)*speed,
	}
}
