package messages

import "github.com/automoto/vantage-mp/shared/netconfig"

// LadderEvent is sent by the authority-side ladder trigger when a character
// enters a ladder volume. Coordinates are the world-space anchor and the
// camera look target.
type LadderEvent struct {
	AnchorX, AnchorY, AnchorZ float32
	LookX, LookY, LookZ       float32
	Direction                 netconfig.ClimbDirection
}
