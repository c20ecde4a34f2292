package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// GroundData is the per-tick ground sensor snapshot. Grounded carries over
// from the last move's contact; the rest is recomputed by the probe.
type GroundData struct {
	Grounded    bool
	WasGrounded bool // previous tick, for airborne/landing transitions

	Normal  mgl32.Vec3
	Angle   float32 // degrees from up
	Sliding bool    // surface steeper than the traction limit

	// LastContactNormal covers the single-frame gap after landing when
	// the down ray no longer reaches the surface.
	LastContactNormal mgl32.Vec3
	LastContactValid  bool
}

var Ground = donburi.NewComponentType[GroundData]()
