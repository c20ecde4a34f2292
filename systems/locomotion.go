package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/cue"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runIntentThreshold is the minimum forward intent required to run.
const runIntentThreshold = 0.5

type locomotionSystem struct {
	cfg *config.Config
}

// NewLocomotionSystem returns the central state machine: it owns posture and
// movement mode and produces the per-tick move vector from input, gravity,
// jump impulses and the slide vector. Ladder mode is handled entirely by the
// ladder system; this system leaves those entities alone.
func NewLocomotionSystem(cfg *config.Config) func(*ecs.ECS) {
	s := &locomotionSystem{cfg: cfg}
	return func(e *ecs.ECS) {
		dt := components.DeltaTime(e.World)
		components.Locomotion.Each(e.World, func(entry *donburi.Entry) {
			s.update(entry, dt)
		})
	}
}

func (s *locomotionSystem) update(entry *donburi.Entry, dt float32) {
	loco := components.Locomotion.Get(entry)
	hooks := components.Hooks.Get(entry)

	// The health collaborator is polled once per tick; a dead character
	// does not locomote.
	if hooks.Health.Dead() {
		loco.Velocity = mgl32.Vec3{}
		loco.Running = false
		return
	}

	switch loco.Mode {
	case netconfig.ModeLadder:
		return
	case netconfig.ModeFly:
		s.flyMove(entry, dt)
	default:
		s.normalMove(entry, dt)
	}
}

func (s *locomotionSystem) normalMove(entry *donburi.Entry, dt float32) {
	cfg := s.cfg.Locomotion
	loco := components.Locomotion.Get(entry)
	in := components.Intent.Get(entry)
	ground := components.Ground.Get(entry)
	slide := components.Slide.Get(entry)
	tr := components.Transform.Get(entry)
	st := components.Stamina.Get(entry)
	hooks := components.Hooks.Get(entry)
	jumped := false

	if loco.PostureCooldown > 0 {
		loco.PostureCooldown -= dt
	}
	if in.Action(netconfig.ActionCrouch).JustPressed {
		s.requestPosture(entry, togglePosture(loco.Posture, netconfig.PostureCrouch))
	}
	if in.Action(netconfig.ActionProne).JustPressed {
		s.requestPosture(entry, togglePosture(loco.Posture, netconfig.PostureProne))
	}

	if ground.Grounded {
		// Running eligibility is only re-evaluated on the ground.
		running := in.Controllable &&
			in.Action(netconfig.ActionRun).Pressed &&
			in.Smoothed.Y() > runIntentThreshold &&
			!in.Action(netconfig.ActionZoom).Pressed &&
			loco.Posture == netconfig.PostureStand &&
			!loco.InWater
		if s.cfg.Stamina.Enabled && st.Current <= 0 {
			running = false
		}
		loco.Running = running
	}

	target := cfg.Posture(int(loco.Posture)).Speed
	if loco.InWater {
		target = cfg.WaterSpeed
	} else if loco.Running {
		target = cfg.RunSpeed
	}
	loco.Speed = gamemath.MoveToward(loco.Speed, target, cfg.RunRampRate*dt)

	if ground.Grounded {
		// The anti-bump bias keeps the character adhering to uneven
		// ground; it is applied only while grounded.
		local := mgl32.Vec3{in.Smoothed.X(), -cfg.AntiBump, in.Smoothed.Y()}
		move := gamemath.LocalToWorld(tr.Yaw, local).Mul(loco.Speed)

		if slide.Active {
			// The slide vector replaces the input-driven move, both
			// mid-slide and during the post-slide decay.
			move = slide.Vector
		}
		loco.Velocity = move

		if in.Action(netconfig.ActionJump).JustPressed {
			// One press is one attempt; the edge is spent even when it
			// only stands the character up.
			in.Consume(netconfig.ActionJump)
			jumped = s.tryJump(entry)
		}
	} else {
		loco.AirTime += dt

		if cfg.AirControl {
			lateral := gamemath.LocalToWorld(tr.Yaw,
				mgl32.Vec3{in.Smoothed.X(), 0, in.Smoothed.Y()}).Mul(loco.Speed)
			loco.Velocity[0] = lateral.X()
			loco.Velocity[2] = lateral.Z()
		}

		if cfg.FlyEnabled && loco.AirTime >= cfg.FlyAfterSeconds {
			loco.Mode = netconfig.ModeFly
		}
	}

	// The granting tick carries the exact launch impulse; gravity
	// resumes next tick.
	if !jumped {
		loco.Velocity[1] -= cfg.EffectiveGravity() * dt
	}

	s.integrate(entry, dt)
	s.emitMovementCues(loco, in, hooks)
}

// tryJump grants a jump if the guards pass and reports whether the impulse
// was applied. A jump request while crouched or prone instead attempts to
// stand up.
func (s *locomotionSystem) tryJump(entry *donburi.Entry) bool {
	loco := components.Locomotion.Get(entry)
	st := components.Stamina.Get(entry)
	hooks := components.Hooks.Get(entry)

	if loco.Posture != netconfig.PostureStand {
		s.requestPosture(entry, netconfig.PostureStand)
		return false
	}
	if s.cfg.Stamina.Enabled && st.Current <= 0 {
		return false
	}

	loco.Velocity[1] = gamemath.JumpSpeed(s.cfg.Locomotion.JumpHeight, s.cfg.Locomotion.EffectiveGravity())
	SpendJumpStamina(st, s.cfg.Stamina, loco.InWater)
	hooks.Feedback.JumpCue()
	return true
}

// integrate hands the scrubbed velocity to the movement primitive and folds
// the contact report back into the ground state.
func (s *locomotionSystem) integrate(entry *donburi.Entry, dt float32) {
	loco := components.Locomotion.Get(entry)
	ground := components.Ground.Get(entry)
	tr := components.Transform.Get(entry)
	body := components.Body.Get(entry).Body

	loco.Velocity = gamemath.Sanitize(loco.Velocity)
	contact := body.Move(loco.Velocity.Mul(dt))
	tr.Position = body.Position()

	if contact.Below || contact.Sides {
		ground.LastContactNormal = contact.Normal
		ground.LastContactValid = true
	}
	ground.Grounded = contact.Below

	if contact.Below {
		loco.AirTime = 0
		if loco.Mode == netconfig.ModeFly {
			// Fly ends the instant ground is detected.
			loco.Mode = netconfig.ModeNormal
		}
		if loco.Velocity.Y() < 0 {
			loco.Velocity[1] = 0
		}
	}
	if contact.Above && loco.Velocity.Y() > 0 {
		loco.Velocity[1] = 0
	}
}

func (s *locomotionSystem) flyMove(entry *donburi.Entry, dt float32) {
	cfg := s.cfg.Locomotion
	loco := components.Locomotion.Get(entry)
	in := components.Intent.Get(entry)
	tr := components.Transform.Get(entry)

	vertical := float32(0)
	if in.Action(netconfig.ActionJump).Pressed {
		vertical = 1
	} else if in.Action(netconfig.ActionCrouch).Pressed {
		vertical = -1
	}

	wish := gamemath.LocalToWorld(tr.Yaw, mgl32.Vec3{in.Smoothed.X(), vertical, in.Smoothed.Y()})
	if l := wish.Len(); l > 1 {
		wish = wish.Mul(1 / l)
	}
	target := wish.Mul(cfg.FlySpeed)

	blend := gamemath.Clamp(cfg.FlyBlendRate*dt, 0, 1)
	loco.Velocity = loco.Velocity.Add(target.Sub(loco.Velocity).Mul(blend))

	s.integrate(entry, dt)
}

// requestPosture applies a guarded posture transition. Failed guards drop
// the request silently; these are expected input races, not faults.
func (s *locomotionSystem) requestPosture(entry *donburi.Entry, target netconfig.PostureID) {
	loco := components.Locomotion.Get(entry)
	ground := components.Ground.Get(entry)
	slide := components.Slide.Get(entry)
	tr := components.Transform.Get(entry)
	body := components.Body.Get(entry).Body

	// A request for the current posture is a no-op and must not re-arm
	// the debounce.
	if target == loco.Posture {
		return
	}
	if loco.PostureCooldown > 0 {
		return
	}
	if slide.Active || ground.Sliding || loco.InWater || loco.Mode == netconfig.ModeFly {
		return
	}

	cur := s.cfg.Locomotion.Posture(int(loco.Posture))
	next := s.cfg.Locomotion.Posture(int(target))

	if next.Height > cur.Height && !body.ClearanceAbove(next.Height-cur.Height) {
		return
	}

	body.Resize(next.Height, next.CenterY)
	tr.EyeHeight = next.EyeHeight
	loco.Posture = target
	loco.PostureCooldown = s.cfg.Locomotion.PostureCooldown
}

// togglePosture maps a posture button to its target: pressing the button for
// the current posture stands back up.
func togglePosture(current, pressed netconfig.PostureID) netconfig.PostureID {
	if current == pressed {
		return netconfig.PostureStand
	}
	return pressed
}

// emitMovementCues drives the two animation channels, deduped so a
// crossfade fires only when the clip changes.
func (s *locomotionSystem) emitMovementCues(loco *components.LocomotionData, in *components.IntentData, hooks *components.HooksData) {
	bodyClip := cue.ClipIdle
	armsClip := cue.ClipBreath
	if in.Smoothed.Len() > 0.1 {
		bodyClip = cue.ClipWalk
		armsClip = cue.ClipWalk
		if loco.Running {
			bodyClip = cue.ClipRun
			armsClip = cue.ClipRun
		}
	}

	if bodyClip != loco.LastBody {
		hooks.Animator.Crossfade(cue.ChannelBody, bodyClip)
		loco.LastBody = bodyClip
	}
	if armsClip != loco.LastArms {
		hooks.Animator.Crossfade(cue.ChannelArms, armsClip)
		loco.LastArms = armsClip
	}
}
