package systems

import (
	"testing"

	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
)

// land marks the character as having fallen dist units and runs the fall
// system through the landing tick twice, so each case also proves the
// settlement fires only once.
func land(h *harness, dist float32, posture netconfig.PostureID, sliding bool) {
	fall := h.fallState()
	fall.Airborne = true
	fall.HighestY = dist

	h.transform().Position = mgl32.Vec3{}
	h.loco().Posture = posture

	g := h.groundState()
	g.Grounded = true
	g.Sliding = sliding

	sys := NewFallDamageSystem(h.cfg)
	sys(h.e)
	sys(h.e)
}

func TestFallDamageThresholds(t *testing.T) {
	tests := []struct {
		name       string
		dist       float32
		posture    netconfig.PostureID
		wantDamage []int
		wantLands  []bool
	}{
		{"short drop", 1.5, netconfig.PostureStand, nil, nil},
		{"noticeable drop", 5, netconfig.PostureStand, nil, []bool{false}},
		{"at stand threshold", 8, netconfig.PostureStand, nil, []bool{false}},
		{"past stand threshold", 8.01, netconfig.PostureStand, []int{40}, []bool{true}},
		{"crouched drop", 5, netconfig.PostureCrouch, []int{25}, []bool{true}},
		{"prone at threshold", 4, netconfig.PostureProne, nil, []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			land(h, tt.dist, tt.posture, false)

			if got := h.rec.damage; !equalInts(got, tt.wantDamage) {
				t.Fatalf("damage = %v, want %v", got, tt.wantDamage)
			}
			if got := h.rec.lands; !equalBools(got, tt.wantLands) {
				t.Fatalf("land cues = %v, want %v", got, tt.wantLands)
			}
		})
	}
}

func TestFallDamageHeavyLandingKicksCamera(t *testing.T) {
	h := newHarness(t, nil)
	land(h, 20, netconfig.PostureStand, false)

	if h.rec.kickbacks != 1 {
		t.Fatalf("kickbacks = %d, want 1", h.rec.kickbacks)
	}
}

func TestFallDamageSkippedWhileSliding(t *testing.T) {
	h := newHarness(t, nil)
	land(h, 30, netconfig.PostureStand, true)

	if len(h.rec.damage) != 0 || len(h.rec.lands) != 0 {
		t.Fatalf("slide landing produced damage %v cues %v", h.rec.damage, h.rec.lands)
	}
	if h.fallState().Airborne {
		t.Fatal("airborne flag survived a slide landing")
	}
}

func TestFallDamageTracksAscent(t *testing.T) {
	h := newHarness(t, nil)
	fall := h.fallState()
	fall.Airborne = true
	fall.HighestY = 2
	h.groundState().Grounded = false

	sys := NewFallDamageSystem(h.cfg)

	// Still rising: the mark follows the character up.
	h.loco().Velocity = mgl32.Vec3{0, 5, 0}
	h.transform().Position = mgl32.Vec3{0, 3, 0}
	sys(h.e)
	if fall.HighestY != 3 {
		t.Fatalf("mark = %v during ascent, want 3", fall.HighestY)
	}

	// Descending: the mark stays where the apex was.
	h.loco().Velocity = mgl32.Vec3{0, -5, 0}
	h.transform().Position = mgl32.Vec3{0, 2.5, 0}
	sys(h.e)
	if fall.HighestY != 3 {
		t.Fatalf("mark = %v during descent, want 3", fall.HighestY)
	}
}

func TestFallDamageFullDrop(t *testing.T) {
	h := newHarness(t, nil)
	h.body.pos = mgl32.Vec3{0, 12, 0}
	h.transform().Position = mgl32.Vec3{0, 12, 0}

	h.settle(t)

	if len(h.rec.damage) != 1 {
		t.Fatalf("damage applied %d times, want 1", len(h.rec.damage))
	}
	if got := h.rec.damage[0]; got < 55 || got > 60 {
		t.Fatalf("damage = %d for a 12 unit drop, want near 60", got)
	}
	if len(h.rec.lands) != 1 || !h.rec.lands[0] {
		t.Fatalf("land cues = %v, want one heavy", h.rec.lands)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
