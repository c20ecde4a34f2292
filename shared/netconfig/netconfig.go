// Package netconfig defines lightweight types shared between the authority
// and observers for network serialization. It must have zero dependencies on
// any rendering or platform library so the dedicated server binary stays
// headless.
package netconfig

// PostureID identifies the character's body posture. Postures are mutually
// exclusive and determine collider size, eye height and speed cap.
type PostureID int

const (
	PostureStand PostureID = iota
	PostureCrouch
	PostureProne
)

func (p PostureID) String() string {
	switch p {
	case PostureStand:
		return "stand"
	case PostureCrouch:
		return "crouch"
	case PostureProne:
		return "prone"
	}
	return "unknown"
}

// ModeID identifies the movement mode driving the per-tick move vector.
type ModeID int

const (
	ModeNormal ModeID = iota
	ModeLadder
	ModeFly
)

func (m ModeID) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeLadder:
		return "ladder"
	case ModeFly:
		return "fly"
	}
	return "unknown"
}

// ClimbDirection tells a ladder traversal which way the character entered.
type ClimbDirection int

const (
	ClimbUp ClimbDirection = iota
	ClimbDown
)

// ActionID represents a logical movement action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionRun
	ActionCrouch
	ActionProne
	ActionZoom
	ActionLadderExit
	ActionCount // Must be last - used for array sizing
)
