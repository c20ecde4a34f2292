package components

import (
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// IntentData stores the character's per-tick input intents. The authority
// fills Raw and Current from the owning client's messages; the intent system
// derives the smoothed vector and the edge states. An absent input read
// simply leaves everything at its zero value for the tick.
type IntentData struct {
	Raw      mgl32.Vec2 // device vector, each axis in [-1, 1]
	Smoothed mgl32.Vec2

	Current  [netconfig.ActionCount]bool
	Previous [netconfig.ActionCount]bool

	// Consumed marks press edges already spent this tick. The authority
	// sub-steps with the same Current/Previous pair, so a one-press action
	// must be consumed by whoever acts on it.
	Consumed [netconfig.ActionCount]bool

	Controllable bool
}

var Intent = donburi.NewComponentType[IntentData]()

// Action computes the edge/level state for one action.
func (d *IntentData) Action(id netconfig.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[id],
		JustPressed:  d.Current[id] && !d.Previous[id] && !d.Consumed[id],
		JustReleased: !d.Current[id] && d.Previous[id],
	}
}

// Consume spends the action's press edge for the rest of the tick.
func (d *IntentData) Consume(id netconfig.ActionID) {
	d.Consumed[id] = true
}
