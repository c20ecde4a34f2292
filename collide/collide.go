// Package collide defines the boundary to the character-vs-geometry solver.
// The solver itself lives outside this module; the simulation only needs a
// primitive that moves a collider by a vector and reports which sides
// collided, plus two probes for posture clearance and ground sensing.
package collide

import "github.com/go-gl/mathgl/mgl32"

// Hit describes a surface found by a downward cast.
type Hit struct {
	Normal   mgl32.Vec3
	Distance float32
}

// Contact reports the outcome of a Move call.
type Contact struct {
	Below bool // collider rests on something
	Above bool // collider hit a ceiling
	Sides bool // collider was blocked laterally

	// Normal is the surface normal of the most recent blocking contact.
	// Only meaningful when at least one of the side flags is set.
	Normal mgl32.Vec3
}

// Body is the movement primitive for one character.
type Body interface {
	// Move displaces the collider by delta, sliding along blocking
	// geometry, and reports which sides made contact.
	Move(delta mgl32.Vec3) Contact

	Position() mgl32.Vec3

	// SetPosition teleports the collider, bypassing collision. Used by
	// ladder auto-alignment and explicit teleports.
	SetPosition(pos mgl32.Vec3)

	// Resize changes the collider's height and vertical center, as when
	// switching posture.
	Resize(height, centerY float32)

	// ClearanceAbove shape-casts upward from the collider's top by delta
	// and reports whether the space is free.
	ClearanceAbove(delta float32) bool

	// CastDown ray-casts straight down from a point offset below the
	// collider's feet, out to maxDist, against slide-classified surfaces.
	CastDown(offset, maxDist float32) (Hit, bool)

	// SetEnabled toggles the solver. While disabled, Move is a no-op and
	// only SetPosition affects the transform; the ladder interpolation
	// phases use this to avoid double integration.
	SetEnabled(enabled bool)
}
