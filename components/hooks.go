package components

import (
	"errors"

	"github.com/automoto/vantage-mp/cue"
	"github.com/yohamta/donburi"
)

// HooksData carries the character's constructor-injected collaborator
// references. Physics that runs one tick with a missing collaborator would
// produce silently wrong motion, so Validate must pass before the entity
// ever enters the simulation.
type HooksData struct {
	Animator cue.Animator
	Camera   cue.Camera
	Feedback cue.Feedback
	UI       cue.UI
	Health   cue.Health
}

var Hooks = donburi.NewComponentType[HooksData]()

// Validate reports the first missing collaborator.
func (h HooksData) Validate() error {
	switch {
	case h.Animator == nil:
		return errors.New("hooks: animator collaborator is required")
	case h.Camera == nil:
		return errors.New("hooks: camera collaborator is required")
	case h.Feedback == nil:
		return errors.New("hooks: feedback collaborator is required")
	case h.UI == nil:
		return errors.New("hooks: ui collaborator is required")
	case h.Health == nil:
		return errors.New("hooks: health collaborator is required")
	}
	return nil
}
