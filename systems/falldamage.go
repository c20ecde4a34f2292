package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewFallDamageSystem returns the fall damage model. It seeds the airborne
// high-water mark when the character leaves the ground, keeps raising it
// while still ascending, and converts the excess drop into damage exactly
// once, at landing. Landings that are part of a slide never damage.
func NewFallDamageSystem(cfg *config.Config) func(*ecs.ECS) {
	fallCfg := cfg.Fall

	return func(e *ecs.ECS) {
		components.Fall.Each(e.World, func(entry *donburi.Entry) {
			fall := components.Fall.Get(entry)
			ground := components.Ground.Get(entry)
			loco := components.Locomotion.Get(entry)
			tr := components.Transform.Get(entry)
			hooks := components.Hooks.Get(entry)

			y := tr.Position.Y()

			if !ground.Grounded {
				if !fall.Airborne {
					fall.Airborne = true
					fall.HighestY = y
				} else if loco.Velocity.Y() > 0 && y > fall.HighestY {
					// Covers jump frames that are still rising.
					fall.HighestY = y
				}
				return
			}

			if !fall.Airborne {
				return
			}
			fall.Airborne = false

			if ground.Sliding {
				return
			}

			dist := fall.HighestY - y
			threshold := fallCfg.StandThreshold
			if loco.Posture != netconfig.PostureStand {
				threshold = fallCfg.CrouchProneThreshold
			}

			switch {
			case dist > threshold:
				hooks.Health.ApplyDamage(int(dist * fallCfg.DamageMultiplier))
				hooks.Camera.Kickback(mgl32.Vec3{-fallCfg.KickbackPitch, 0, 0}, fallCfg.KickbackSeconds)
				hooks.Feedback.LandCue(true)
			case dist > fallCfg.MinNotice:
				hooks.Feedback.LandCue(false)
			}
		})
	}
}
