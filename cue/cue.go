// Package cue declares the collaborator interfaces the locomotion core emits
// semantic triggers through. Rendering, audio and HUD live outside this
// module; the simulation only tells them what happened.
package cue

import "github.com/go-gl/mathgl/mgl32"

// Channel selects one of the two independent animation channels.
type Channel int

const (
	ChannelBody Channel = iota
	ChannelArms
)

// Clip identifies an animation clip to crossfade to.
type Clip int

const (
	ClipNone Clip = iota
	ClipIdle
	ClipWalk
	ClipRun
	ClipBreath
)

// Animator receives crossfade requests for the body and arm channels.
type Animator interface {
	Crossfade(ch Channel, clip Clip)
}

// Camera receives impulse kickbacks and scripted look interpolation.
type Camera interface {
	// Kickback applies a rotation offset over the given duration, as on a
	// hard landing.
	Kickback(offset mgl32.Vec3, seconds float32)

	// LookToward interpolates the camera toward a world point, as during
	// ladder alignment.
	LookToward(target mgl32.Vec3, seconds float32)
}

// Feedback receives discrete movement cues (jump launch, landings).
type Feedback interface {
	JumpCue()
	// LandCue fires on a noticeable landing; heavy marks a damaging one.
	LandCue(heavy bool)
}

// UI receives stamina visibility and value updates.
type UI interface {
	StaminaShow(value float32)
	StaminaHide()
	StaminaUpdate(value float32)
	StaminaMaxChanged(max float32)
}

// Health is the character's health collaborator. The simulation polls Dead
// once per tick and early-exits all locomotion when it reports true.
type Health interface {
	ApplyDamage(amount int)
	Dead() bool
}
