package cue

import "github.com/go-gl/mathgl/mgl32"

// Nop implementations for headless hosts that have no renderer or HUD
// attached, such as the dedicated server.

type NopAnimator struct{}

func (NopAnimator) Crossfade(Channel, Clip) {}

type NopCamera struct{}

func (NopCamera) Kickback(mgl32.Vec3, float32) {}
func (NopCamera) LookToward(mgl32.Vec3, float32) {}

type NopFeedback struct{}

func (NopFeedback) JumpCue() {}
func (NopFeedback) LandCue(bool) {}

type NopUI struct{}

func (NopUI) StaminaShow(float32) {}
func (NopUI) StaminaHide() {}
func (NopUI) StaminaUpdate(float32) {}
func (NopUI) StaminaMaxChanged(float32) {}
