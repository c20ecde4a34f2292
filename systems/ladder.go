package systems

import (
	"errors"

	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/cue"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LadderSystem drives ladder traversal: a straight-line auto-move onto the
// ladder anchor, a climbing phase, and an auto-move back out. While the two
// interpolation phases run, the movement primitive is disabled so position
// is never integrated twice. The ladder trigger collaborator calls Enter;
// Exit is the entry point for the trigger or input.
type LadderSystem struct {
	cfg *config.Config
}

func NewLadderSystem(cfg *config.Config) (*LadderSystem, error) {
	if cfg == nil {
		return nil, errors.New("ladder: config is required")
	}
	return &LadderSystem{cfg: cfg}, nil
}

// Enter starts a traversal toward the given anchor. Only a character in
// Normal mode can take a ladder; anything else drops the event.
func (s *LadderSystem) Enter(entry *donburi.Entry, anchor, look mgl32.Vec3, dir netconfig.ClimbDirection) {
	loco := components.Locomotion.Get(entry)
	if loco.Mode != netconfig.ModeNormal {
		return
	}
	hooks := components.Hooks.Get(entry)
	if hooks.Health.Dead() {
		return
	}

	lad := components.Ladder.Get(entry)
	tr := components.Transform.Get(entry)
	body := components.Body.Get(entry).Body

	loco.Mode = netconfig.ModeLadder
	loco.Running = false
	loco.Velocity = mgl32.Vec3{}

	lad.Phase = components.LadderAligningIn
	lad.Direction = dir
	lad.Anchor = anchor
	lad.Look = look
	lad.ExitPoint = tr.Position
	lad.Align = gamemath.NewLerpTask(tr.Position, anchor, s.cfg.Ladder.AutoMoveSpeed)

	body.SetEnabled(false)
	hooks.Camera.LookToward(look, s.cfg.Ladder.LookSeconds)
	s.forceIdle(loco, hooks)
}

// Exit requests leaving the ladder. It is honored only once the traversal
// has reached the climbing state; requests during auto-align are ignored so
// control is never lost mid-transition.
func (s *LadderSystem) Exit(entry *donburi.Entry) {
	loco := components.Locomotion.Get(entry)
	lad := components.Ladder.Get(entry)
	if loco.Mode != netconfig.ModeLadder || lad.Phase != components.LadderClimbing {
		return
	}

	tr := components.Transform.Get(entry)
	body := components.Body.Get(entry).Body

	lad.Phase = components.LadderAligningOut
	lad.Align = gamemath.NewLerpTask(tr.Position, lad.ExitPoint, s.cfg.Ladder.AutoMoveSpeed)
	body.SetEnabled(false)
}

// Update advances every ladder traversal by one tick.
func (s *LadderSystem) Update(e *ecs.ECS) {
	dt := components.DeltaTime(e.World)

	components.Ladder.Each(e.World, func(entry *donburi.Entry) {
		loco := components.Locomotion.Get(entry)
		if loco.Mode != netconfig.ModeLadder {
			return
		}

		lad := components.Ladder.Get(entry)
		tr := components.Transform.Get(entry)
		in := components.Intent.Get(entry)
		body := components.Body.Get(entry).Body

		switch lad.Phase {
		case components.LadderAligningIn:
			pos, done := lad.Align.Step(dt)
			tr.Position = pos
			body.SetPosition(pos)
			if done || pos.Sub(lad.Anchor).Len() <= s.cfg.Ladder.Epsilon {
				lad.Phase = components.LadderClimbing
				body.SetEnabled(true)
			}

		case components.LadderClimbing:
			if in.Action(netconfig.ActionJump).JustPressed ||
				in.Action(netconfig.ActionLadderExit).JustPressed {
				in.Consume(netconfig.ActionJump)
				in.Consume(netconfig.ActionLadderExit)
				s.Exit(entry)
				return
			}
			climb := in.Smoothed.Y() * s.cfg.Ladder.ClimbSpeed
			if lad.Direction == netconfig.ClimbDown {
				climb = -climb
			}
			body.Move(mgl32.Vec3{0, climb * dt, 0})
			tr.Position = body.Position()

		case components.LadderAligningOut:
			pos, done := lad.Align.Step(dt)
			tr.Position = pos
			body.SetPosition(pos)
			if done || pos.Sub(lad.ExitPoint).Len() <= s.cfg.Ladder.Epsilon {
				lad.Phase = components.LadderIdle
				loco.Mode = netconfig.ModeNormal
				loco.Velocity = mgl32.Vec3{}
				body.SetEnabled(true)
			}
		}
	})
}

// forceIdle resets both animation channels; climbing animates externally.
func (s *LadderSystem) forceIdle(loco *components.LocomotionData, hooks *components.HooksData) {
	if loco.LastBody != cue.ClipIdle {
		hooks.Animator.Crossfade(cue.ChannelBody, cue.ClipIdle)
		loco.LastBody = cue.ClipIdle
	}
	if loco.LastArms != cue.ClipIdle {
		hooks.Animator.Crossfade(cue.ChannelArms, cue.ClipIdle)
		loco.LastArms = cue.ClipIdle
	}
}
