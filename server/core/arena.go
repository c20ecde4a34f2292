package core

import (
	"github.com/automoto/vantage-mp/collide"
	"github.com/go-gl/mathgl/mgl32"
)

// Arena is the authority's stand-in geometry: an infinite flat floor with a
// fixed spawn point. The production collision solver plugs in behind the
// same collide.Body interface; the arena exists so a headless server can run
// the full simulation without one.
type Arena struct {
	FloorY float32
	Spawn  mgl32.Vec3
}

func NewArena(floorY float32, spawn mgl32.Vec3) *Arena {
	return &Arena{FloorY: floorY, Spawn: spawn}
}

// NewBody creates a collider for one character, resting on the floor plane.
func (a *Arena) NewBody() collide.Body {
	return &planeBody{arena: a, pos: a.Spawn, enabled: true}
}

type planeBody struct {
	arena *Arena
	pos   mgl32.Vec3

	height  float32
	centerY float32
	enabled bool
}

var floorNormal = mgl32.Vec3{0, 1, 0}

func (b *planeBody) Move(delta mgl32.Vec3) collide.Contact {
	if !b.enabled {
		return collide.Contact{}
	}
	b.pos = b.pos.Add(delta)

	var c collide.Contact
	if b.pos.Y() <= b.arena.FloorY {
		b.pos[1] = b.arena.FloorY
		c.Below = true
		c.Normal = floorNormal
	}
	return c
}

func (b *planeBody) Position() mgl32.Vec3       { return b.pos }
func (b *planeBody) SetPosition(pos mgl32.Vec3) { b.pos = pos }

func (b *planeBody) Resize(height, centerY float32) {
	b.height = height
	b.centerY = centerY
}

// ClearanceAbove always passes: the arena has no ceilings.
func (b *planeBody) ClearanceAbove(delta float32) bool { return true }

func (b *planeBody) CastDown(offset, maxDist float32) (collide.Hit, bool) {
	dist := b.pos.Y() - offset - b.arena.FloorY
	if dist > maxDist {
		return collide.Hit{}, false
	}
	return collide.Hit{Normal: floorNormal, Distance: dist}, true
}

func (b *planeBody) SetEnabled(enabled bool) { b.enabled = enabled }
