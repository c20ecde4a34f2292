package components

import "github.com/yohamta/donburi"

// FallData tracks one airborne episode for fall damage. HighestY is the
// high-water mark since leaving the ground; it is consumed exactly once, at
// landing.
type FallData struct {
	Airborne bool
	HighestY float32
}

var Fall = donburi.NewComponentType[FallData]()
