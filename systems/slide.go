package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minSlideSpeed is the lower clamp on slide speed while actively sliding.
const minSlideSpeed = 1.0

// NewSlideSystem returns the steep-slope slide dynamics. While grounded on a
// slide-classified surface it accumulates an accelerating downslope vector
// with optional player steering; once off the surface the carried vector
// decays linearly until cleared, so the character does not stop dead at the
// bottom of a slope.
func NewSlideSystem(cfg *config.Config) func(*ecs.ECS) {
	slideCfg := cfg.Slide

	return func(e *ecs.ECS) {
		dt := components.DeltaTime(e.World)

		components.Slide.Each(e.World, func(entry *donburi.Entry) {
			slide := components.Slide.Get(entry)
			ground := components.Ground.Get(entry)
			loco := components.Locomotion.Get(entry)
			fall := components.Fall.Get(entry)
			tr := components.Transform.Get(entry)
			in := components.Intent.Get(entry)

			if ground.Grounded && ground.Sliding {
				// Sliding is visually a fall-risk state: keep the
				// fall high-water mark pinned to the current height.
				fall.HighestY = tr.Position.Y()

				cur := slide.Vector
				if !slide.Active {
					cur = loco.Velocity
				}

				speed := gamemath.Clamp(gamemath.Horizontal(cur).Len(), minSlideSpeed, slideCfg.MaxSpeed)
				if cur.Y() >= -0.1 {
					speed = gamemath.MoveToward(speed, slideCfg.MaxSpeed, slideCfg.Acceleration*dt)
				}

				normal := ground.Normal
				if l := normal.Len(); l > 1e-6 {
					normal = normal.Mul(1 / l)
				}
				downslope := gamemath.Horizontal(normal).Mul((1 - normal.Y()) * slideCfg.Friction)

				dir := cur.Add(downslope.Mul(dt))
				dir = dir.Add(gamemath.Right(tr.Yaw).Mul(in.Smoothed.X() * slideCfg.Control))
				if dir.Len() < 1e-6 {
					dir = gamemath.Horizontal(normal)
				}
				if dir.Len() < 1e-6 {
					dir = mgl32.Vec3{0, -1, 0}
				}

				slide.Vector = dir.Normalize().Mul(speed)
				slide.Active = true
				return
			}

			if !slide.Active {
				return
			}

			mag := slide.Vector.Len()
			if mag <= slideCfg.ClearThreshold {
				slide.Vector = mgl32.Vec3{}
				slide.Active = false
				return
			}

			next := mag - slideCfg.DecayRate*dt
			if next < 0 {
				next = 0
			}
			slide.Vector = slide.Vector.Mul(next / mag)
		})
	}
}
