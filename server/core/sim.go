package core

import (
	"fmt"

	"github.com/automoto/vantage-mp/archetypes"
	"github.com/automoto/vantage-mp/collide"
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/cue"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/messages"
	"github.com/automoto/vantage-mp/shared/netcomponents"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/automoto/vantage-mp/systems"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// baseStepRate is the physics step frequency the movement constants are
// tuned for. The loop sub-steps each server tick so the same constants work
// at any lower tick rate.
const baseStepRate = 60

// simulation owns the authoritative ECS world and the system chain.
type simulation struct {
	ecs    *ecs.ECS
	cfg    *config.Config
	clock  *donburi.Entry
	ladder *systems.LadderSystem

	chain []func(*ecs.ECS)
}

func newSimulation(cfg *config.Config) (*simulation, error) {
	e := ecs.NewECS(donburi.NewWorld())

	ladder, err := systems.NewLadderSystem(cfg)
	if err != nil {
		return nil, fmt.Errorf("ladder system: %w", err)
	}

	s := &simulation{
		ecs:    e,
		cfg:    cfg,
		clock:  archetypes.SpawnClock(e),
		ladder: ladder,
	}
	s.chain = []func(*ecs.ECS){
		systems.NewIntentSystem(cfg),
		systems.NewGroundSystem(cfg),
		ladder.Update,
		systems.NewSlideSystem(cfg),
		systems.NewLocomotionSystem(cfg),
		systems.NewStaminaSystem(cfg),
		systems.NewFallDamageSystem(cfg),
	}
	return s, nil
}

// spawnCharacter creates a replicated character wired with headless
// collaborators and the given health.
func (s *simulation) spawnCharacter(body collide.Body, spawn mgl32.Vec3, health *characterHealth) (*donburi.Entry, error) {
	hooks := components.HooksData{
		Animator: cue.NopAnimator{},
		Camera:   cue.NopCamera{},
		Feedback: cue.NopFeedback{},
		UI:       cue.NopUI{},
		Health:   health,
	}

	entry, err := archetypes.SpawnCharacter(s.ecs, s.cfg, spawn, body, hooks)
	if err != nil {
		return nil, err
	}

	donburi.Add(entry, netcomponents.NetPosition, &netcomponents.NetPositionData{
		X: spawn.X(), Y: spawn.Y(), Z: spawn.Z(),
	})
	donburi.Add(entry, netcomponents.NetLocomotion, &netcomponents.NetLocomotionData{})

	return entry, nil
}

// applyIntent copies a client intent into the character's input components.
func (s *simulation) applyIntent(entity donburi.Entity, intent *messages.MoveIntent) {
	if !s.ecs.World.Valid(entity) {
		return
	}
	entry := s.ecs.World.Entry(entity)
	in := components.Intent.Get(entry)

	in.Raw = gamemath.Sanitize2(mgl32.Vec2{intent.MoveX, intent.MoveY})

	// The map key comes straight off the wire; anything outside the known
	// action range is dropped.
	var current [netconfig.ActionCount]bool
	for id, held := range intent.Actions {
		if held && id >= 0 && id < netconfig.ActionCount {
			current[id] = true
		}
	}
	in.Current = current
}

// step advances the simulation by one server tick, sub-stepped at the base
// physics rate, then mirrors the results into the replicated components.
func (s *simulation) step(tickRate int) {
	steps := baseStepRate / tickRate
	if steps < 1 {
		steps = 1
	}
	dt := 1 / (float32(tickRate) * float32(steps))
	components.Clock.Get(s.clock).DT = dt

	for i := 0; i < steps; i++ {
		for _, fn := range s.chain {
			fn(s.ecs)
		}
	}
	systems.FlushIntent(s.ecs)

	s.publish()
}

func (s *simulation) publish() {
	components.Locomotion.Each(s.ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetPosition) {
			return
		}
		tr := components.Transform.Get(entry)
		loco := components.Locomotion.Get(entry)
		in := components.Intent.Get(entry)

		pos := gamemath.Sanitize(tr.Position)
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
			X: pos.X(), Y: pos.Y(), Z: pos.Z(),
		})
		netcomponents.NetLocomotion.SetValue(entry, netcomponents.NetLocomotionData{
			Posture: loco.Posture,
			Mode:    loco.Mode,
			Running: loco.Running,
			Speed:   loco.Velocity.Len(),
			InputX:  in.Smoothed.X(),
			InputY:  in.Smoothed.Y(),
		})
	})
}
