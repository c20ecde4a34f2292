package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var up = mgl32.Vec3{0, 1, 0}

// NewGroundSystem returns the ground sensor. It casts a ray straight down
// from a point offset below the feet to classify the surface. When the
// surface is out of ray range (the single-frame gap right after landing) it
// falls back to the normal recorded from the last physical contact.
func NewGroundSystem(cfg *config.Config) func(*ecs.ECS) {
	loco := cfg.Locomotion

	return func(e *ecs.ECS) {
		components.Ground.Each(e.World, func(entry *donburi.Entry) {
			g := components.Ground.Get(entry)
			body := components.Body.Get(entry).Body

			g.WasGrounded = g.Grounded

			if hit, ok := body.CastDown(loco.FootOffset, loco.GroundRay); ok {
				g.Normal = hit.Normal
				g.Angle = gamemath.SlopeAngle(hit.Normal)
			} else if g.LastContactValid {
				g.Normal = g.LastContactNormal
				g.Angle = gamemath.SlopeAngle(g.LastContactNormal)
			} else {
				g.Normal = up
				g.Angle = 0
			}

			g.Sliding = g.Angle > loco.SlopeLimit-loco.SlopeMargin
		})
	}
}
