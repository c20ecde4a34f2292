package messages

import "github.com/automoto/vantage-mp/shared/netconfig"

// MoveIntent is sent from an observer's client to the authority each tick
// with the raw input state. Observers never mutate replicated state
// directly; every client-origin change travels through this one message.
type MoveIntent struct {
	Sequence uint32 // incrementing ID

	MoveX, MoveY float32 // raw device vector, each axis in [-1, 1]

	Actions map[netconfig.ActionID]bool

	Timestamp int64 // client timestamp (Unix ms)
}

// NewMoveIntent creates a MoveIntent with an initialized action map.
func NewMoveIntent(seq uint32) MoveIntent {
	return MoveIntent{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}
