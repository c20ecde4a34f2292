package archetypes

import (
	"errors"

	"github.com/automoto/vantage-mp/collide"
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		components.Transform,
		components.Body,
		components.Intent,
		components.Locomotion,
		components.Ground,
		components.Slide,
		components.Stamina,
		components.Fall,
		components.Ladder,
		components.Hooks,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

var errMissingBody = errors.New("archetypes: collision body is required")

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
	return entry
}

// SpawnCharacter creates a fully wired character entity. It fails hard when
// the body or any collaborator is missing rather than letting a partially
// wired character run a single tick.
func SpawnCharacter(e *ecs.ECS, cfg *config.Config, spawn mgl32.Vec3, body collide.Body, hooks components.HooksData) (*donburi.Entry, error) {
	if body == nil {
		return nil, errMissingBody
	}
	if err := hooks.Validate(); err != nil {
		return nil, err
	}

	entry := Character.Spawn(e)

	stand := cfg.Locomotion.Stand
	body.SetPosition(spawn)
	body.Resize(stand.Height, stand.CenterY)

	components.Transform.SetValue(entry, components.TransformData{
		Position:  spawn,
		EyeHeight: stand.EyeHeight,
	})
	components.Body.SetValue(entry, components.BodyData{Body: body})
	components.Intent.SetValue(entry, components.IntentData{Controllable: true})
	components.Locomotion.SetValue(entry, components.LocomotionData{
		Speed: stand.Speed,
	})
	components.Stamina.SetValue(entry, components.StaminaData{
		Current: cfg.Stamina.Max,
		Max:     cfg.Stamina.Max,
	})
	components.Hooks.SetValue(entry, hooks)

	return entry, nil
}

// SpawnClock creates the world clock singleton.
func SpawnClock(e *ecs.ECS) *donburi.Entry {
	return Clock.Spawn(e)
}
