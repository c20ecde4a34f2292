package netcomponents

import (
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetLocomotionData is the replicated movement state: the minimal subset an
// observer needs to animate a remote character without the input stream.
// Only the authority ever writes these fields.
type NetLocomotionData struct {
	Posture netconfig.PostureID
	Mode    netconfig.ModeID
	Running bool

	Speed float32 // velocity magnitude

	// Smoothed continuous input vector, for blend trees on observers.
	InputX, InputY float32

	IsLocal bool // client-side only, not meaningful on the wire
}

var NetLocomotion = donburi.NewComponentType[NetLocomotionData]()

// LerpNetLocomotion interpolates the continuous fields; the discrete ones
// snap to the newer snapshot.
func LerpNetLocomotion(from, to NetLocomotionData, t float64) *NetLocomotionData {
	f := float32(t)
	return &NetLocomotionData{
		Posture: to.Posture,
		Mode:    to.Mode,
		Running: to.Running,
		Speed:   from.Speed + (to.Speed-from.Speed)*f,
		InputX:  from.InputX + (to.InputX-from.InputX)*f,
		InputY:  from.InputY + (to.InputY-from.InputY)*f,
		IsLocal: to.IsLocal,
	}
}
