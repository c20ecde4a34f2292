package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// SlideData carries the velocity-like vector accumulated on sliding
// surfaces. It persists across ticks and decays by friction once the
// surface is no longer classified as sliding.
type SlideData struct {
	Vector mgl32.Vec3
	Active bool
}

var Slide = donburi.NewComponentType[SlideData]()
