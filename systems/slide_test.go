package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// startSlide puts the ground state on a steep surface without running the
// rest of the chain.
func startSlide(h *harness) {
	g := h.groundState()
	g.Grounded = true
	g.Sliding = true
	g.Normal = slope60
}

func TestSlideSpeedClamp(t *testing.T) {
	h := newHarness(t, nil)
	startSlide(h)

	sys := NewSlideSystem(h.cfg)
	sys(h.e)

	s := h.slideState()
	if !s.Active {
		t.Fatal("steep grounded surface did not start a slide")
	}
	// From rest the speed enters at the lower clamp plus one tick of ramp.
	if got := s.Vector.Len(); got < 1 {
		t.Fatalf("slide speed %v below the lower clamp", got)
	}

	for i := 0; i < 600; i++ {
		sys(h.e)
	}
	if got := s.Vector.Len(); got > h.cfg.Slide.MaxSpeed+1e-3 {
		t.Fatalf("slide speed %v above max %v", got, h.cfg.Slide.MaxSpeed)
	}
	if got := s.Vector.Len(); !approx(got, h.cfg.Slide.MaxSpeed, 0.1) {
		t.Fatalf("sustained slide speed %v, want near max %v", got, h.cfg.Slide.MaxSpeed)
	}
}

func TestSlideFollowsDownslope(t *testing.T) {
	h := newHarness(t, nil)
	startSlide(h)

	sys := NewSlideSystem(h.cfg)
	for i := 0; i < 60; i++ {
		sys(h.e)
	}

	// The surface normal leans toward +X, so the slide must too.
	if got := h.slideState().Vector.X(); got <= 0 {
		t.Fatalf("slide direction X = %v, want downslope (+X)", got)
	}
}

func TestSlideDecayAndClear(t *testing.T) {
	h := newHarness(t, nil)
	s := h.slideState()
	s.Active = true
	s.Vector = mgl32.Vec3{5, 0, 0}

	g := h.groundState()
	g.Grounded = true
	g.Sliding = false

	sys := NewSlideSystem(h.cfg)
	prev := s.Vector.Len()
	for i := 0; i < 600 && s.Active; i++ {
		sys(h.e)
		if mag := s.Vector.Len(); mag > prev+1e-4 {
			t.Fatalf("decay not monotonic: %v -> %v", prev, mag)
		} else {
			prev = mag
		}
	}

	if s.Active {
		t.Fatal("slide never cleared")
	}
	if s.Vector.Len() != 0 {
		t.Fatalf("cleared slide kept vector %v", s.Vector)
	}
}

func TestSlidePinsFallMark(t *testing.T) {
	h := newHarness(t, nil)
	startSlide(h)
	h.transform().Position = mgl32.Vec3{0, 3, 0}
	h.fallState().HighestY = 10

	sys := NewSlideSystem(h.cfg)
	sys(h.e)

	if got := h.fallState().HighestY; got != 3 {
		t.Fatalf("fall mark = %v while sliding at height 3", got)
	}
}

func TestSlideVectorReplacesGroundedMove(t *testing.T) {
	h := newHarness(t, nil)
	h.settle(t)

	s := h.slideState()
	s.Active = true
	s.Vector = mgl32.Vec3{2, 0, 0}
	h.groundState().Sliding = false

	sys := NewLocomotionSystem(h.cfg)
	h.intent().Raw = mgl32.Vec2{0, 1}
	sys(h.e)

	v := h.loco().Velocity
	if !approx(v.X(), 2, 1e-3) || !approx(v.Z(), 0, 1e-3) {
		t.Fatalf("velocity = %v, want the carried slide vector on X", v)
	}
}
