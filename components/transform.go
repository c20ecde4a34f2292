package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is the character's world placement. Position is the feet
// point; EyeHeight is the current camera eye target above it.
type TransformData struct {
	Position  mgl32.Vec3
	Yaw       float32 // degrees, heading for local-to-world movement
	EyeHeight float32
}

var Transform = donburi.NewComponentType[TransformData]()
