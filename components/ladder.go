package components

import (
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// LadderPhase is the traversal sub-state while Mode is Ladder.
type LadderPhase int

const (
	LadderIdle LadderPhase = iota
	LadderAligningIn
	LadderClimbing
	LadderAligningOut
)

// LadderData holds one ladder traversal. Align drives the straight-line
// auto-move during the two interpolation phases.
type LadderData struct {
	Phase     LadderPhase
	Direction netconfig.ClimbDirection

	Anchor mgl32.Vec3
	Look   mgl32.Vec3

	// ExitPoint is where control is handed back after climbing.
	ExitPoint mgl32.Vec3

	Align *gamemath.LerpTask
}

var Ladder = donburi.NewComponentType[LadderData]()
