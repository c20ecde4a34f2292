// Package gamemath holds small float32 math helpers shared by the authority
// simulation and the observer client.
package gamemath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp clamps v to [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MoveToward moves cur toward target by at most maxDelta, never overshooting.
func MoveToward(cur, target, maxDelta float32) float32 {
	if math32.Abs(target-cur) <= maxDelta {
		return target
	}
	if target > cur {
		return cur + maxDelta
	}
	return cur - maxDelta
}

// MoveTowardVec2 moves cur toward target by at most maxDelta in length.
func MoveTowardVec2(cur, target mgl32.Vec2, maxDelta float32) mgl32.Vec2 {
	delta := target.Sub(cur)
	dist := delta.Len()
	if dist <= maxDelta || dist < 1e-7 {
		return target
	}
	return cur.Add(delta.Mul(maxDelta / dist))
}

// Sanitize replaces a vector containing NaN or Inf components with the zero
// vector so a single bad tick can never propagate into the transform or onto
// the wire.
func Sanitize(v mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if math32.IsNaN(v[i]) || math32.IsInf(v[i], 0) {
			return mgl32.Vec3{}
		}
	}
	return v
}

// Sanitize2 is Sanitize for 2D input vectors.
func Sanitize2(v mgl32.Vec2) mgl32.Vec2 {
	for i := 0; i < 2; i++ {
		if math32.IsNaN(v[i]) || math32.IsInf(v[i], 0) {
			return mgl32.Vec2{}
		}
	}
	return v
}

// Horizontal returns v with its vertical component zeroed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// SlopeAngle returns the angle in degrees between a surface normal and
// straight up. The normal does not need to be unit length.
func SlopeAngle(normal mgl32.Vec3) float32 {
	length := normal.Len()
	if length < 1e-7 {
		return 0
	}
	cos := Clamp(normal.Y()/length, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// JumpSpeed returns the launch speed needed to reach apexHeight under
// gravity, the standard projectile formula sqrt(2*h*g).
func JumpSpeed(apexHeight, gravity float32) float32 {
	if apexHeight <= 0 || gravity <= 0 {
		return 0
	}
	return math32.Sqrt(2 * apexHeight * gravity)
}

// Forward returns the horizontal forward direction for a yaw angle in degrees.
func Forward(yaw float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(rad), 0, math32.Cos(rad)}
}

// Right returns the horizontal right direction for a yaw angle in degrees.
func Right(yaw float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Cos(rad), 0, -math32.Sin(rad)}
}

// LocalToWorld rotates a character-local vector (x right, y up, z forward)
// into world space by the character's yaw.
func LocalToWorld(yaw float32, local mgl32.Vec3) mgl32.Vec3 {
	f := Forward(yaw)
	r := Right(yaw)
	return r.Mul(local.X()).Add(mgl32.Vec3{0, local.Y(), 0}).Add(f.Mul(local.Z()))
}
