package components

import (
	"github.com/automoto/vantage-mp/collide"
	"github.com/yohamta/donburi"
)

// BodyData wraps the external collision primitive for one character.
type BodyData struct {
	Body collide.Body
}

var Body = donburi.NewComponentType[BodyData]()
