package components

import "github.com/yohamta/donburi"

// ClockData is a world singleton holding the current simulation step size.
type ClockData struct {
	DT float32 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()

// DeltaTime returns the current step size, defaulting to a 60 Hz step when
// no clock entity exists (as in isolated tests).
func DeltaTime(w donburi.World) float32 {
	if entry, ok := Clock.First(w); ok {
		if dt := Clock.Get(entry).DT; dt > 0 {
			return dt
		}
	}
	return 1.0 / 60.0
}
