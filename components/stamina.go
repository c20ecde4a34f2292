package components

import "github.com/yohamta/donburi"

// StaminaData is the depletable running/jumping resource. Current stays in
// [0, Max]; RegenWait counts down after the last depleting action before
// regeneration may resume.
type StaminaData struct {
	Current float32
	Max     float32

	RegenWait float32

	// Shown mirrors whether the UI bar is currently visible, so the
	// show/hide events fire only on crossings.
	Shown bool
}

var Stamina = donburi.NewComponentType[StaminaData]()
