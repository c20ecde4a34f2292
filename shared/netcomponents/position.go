package netcomponents

import "github.com/yohamta/donburi"

type NetPositionData struct {
	X, Y, Z float32
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	f := float32(t)
	return &NetPositionData{
		X: from.X + (to.X-from.X)*f,
		Y: from.Y + (to.Y-from.Y)*f,
		Z: from.Z + (to.Z-from.Z)*f,
	}
}
