package components

import (
	"github.com/automoto/vantage-mp/cue"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// LocomotionData is the character's long-lived movement state. Posture and
// Mode only mutate through the state machine's guarded transitions.
type LocomotionData struct {
	Posture netconfig.PostureID
	Mode    netconfig.ModeID

	Running bool
	InWater bool

	// Speed is the active horizontal speed, ramped toward the per-posture
	// target rather than snapped.
	Speed float32

	Velocity mgl32.Vec3 // units/second

	// PostureCooldown debounces posture change requests.
	PostureCooldown float32

	// AirTime is how long the character has been continuously airborne;
	// feeds the feature-gated fly-mode entry.
	AirTime float32

	// LastBody/LastArms dedupe animation crossfade cues.
	LastBody cue.Clip
	LastArms cue.Clip
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
