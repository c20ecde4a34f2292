package core

import (
	"testing"

	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/messages"
	"github.com/automoto/vantage-mp/shared/netcomponents"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

func newTestSim(t *testing.T) (*simulation, *donburi.Entry) {
	t.Helper()

	sim, err := newSimulation(testConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	arena := NewArena(0, mgl32.Vec3{0, 0.5, 0})
	entry, err := sim.spawnCharacter(arena.NewBody(), arena.Spawn, newCharacterHealth())
	if err != nil {
		t.Fatalf("spawn character: %v", err)
	}
	return sim, entry
}

func TestSimulationSettlesOnArenaFloor(t *testing.T) {
	sim, entry := newTestSim(t)

	for i := 0; i < 40; i++ {
		sim.step(testConfig().Net.TickRate)
	}

	tr := components.Transform.Get(entry)
	if tr.Position.Y() != 0 {
		t.Fatalf("height = %v after settling, want 0", tr.Position.Y())
	}
	if !components.Ground.Get(entry).Grounded {
		t.Fatal("character not grounded on the arena floor")
	}
}

func TestApplyIntentMapsActions(t *testing.T) {
	sim, entry := newTestSim(t)

	intent := messages.NewMoveIntent(1)
	intent.MoveX = 0.25
	intent.MoveY = -2 // out of range, clamped by the intent system
	intent.Actions[netconfig.ActionRun] = true
	intent.Actions[netconfig.ActionCount] = true   // unknown id, dropped
	intent.Actions[netconfig.ActionID(-1)] = true // hostile id, dropped

	sim.applyIntent(entry.Entity(), &intent)

	in := components.Intent.Get(entry)
	if in.Raw != (mgl32.Vec2{0.25, -2}) {
		t.Fatalf("raw = %v, want the message vector", in.Raw)
	}
	if !in.Current[netconfig.ActionRun] {
		t.Fatal("run action not applied")
	}
	for id, held := range in.Current {
		if held && netconfig.ActionID(id) != netconfig.ActionRun {
			t.Fatalf("unexpected action %d held", id)
		}
	}
}

func TestSubSteppedTickCrouchedJumpOnlyStandsUp(t *testing.T) {
	sim, entry := newTestSim(t)
	tickRate := testConfig().Net.TickRate

	for i := 0; i < 40; i++ {
		sim.step(tickRate)
	}

	crouch := messages.NewMoveIntent(1)
	crouch.Actions[netconfig.ActionCrouch] = true
	sim.applyIntent(entry.Entity(), &crouch)
	sim.step(tickRate)
	if got := components.Locomotion.Get(entry).Posture; got != netconfig.PostureCrouch {
		t.Fatalf("posture = %v, want crouch", got)
	}

	idle := messages.NewMoveIntent(2)
	sim.applyIntent(entry.Entity(), &idle)
	for i := 0; i < 10; i++ { // let the posture debounce lapse
		sim.step(tickRate)
	}

	// One press while crouched stands the character up; the later
	// sub-steps of the same tick must not turn it into a launch.
	jump := messages.NewMoveIntent(3)
	jump.Actions[netconfig.ActionJump] = true
	sim.applyIntent(entry.Entity(), &jump)
	sim.step(tickRate)

	loco := components.Locomotion.Get(entry)
	if loco.Posture != netconfig.PostureStand {
		t.Fatalf("posture = %v, want stand", loco.Posture)
	}
	if loco.Velocity.Y() > 0 {
		t.Fatalf("velocity Y = %v on the stand-up tick, want no launch", loco.Velocity.Y())
	}
}

func TestPublishMirrorsSimulationState(t *testing.T) {
	sim, entry := newTestSim(t)

	intent := messages.NewMoveIntent(1)
	intent.MoveY = 1
	sim.applyIntent(entry.Entity(), &intent)
	for i := 0; i < 40; i++ {
		sim.step(testConfig().Net.TickRate)
	}

	tr := components.Transform.Get(entry)
	pos := netcomponents.NetPosition.Get(entry)
	if pos.X != tr.Position.X() || pos.Y != tr.Position.Y() || pos.Z != tr.Position.Z() {
		t.Fatalf("replicated position %+v, transform %v", pos, tr.Position)
	}
	if pos.Z <= 0 {
		t.Fatalf("replicated Z = %v after forward input, want progress", pos.Z)
	}

	loco := netcomponents.NetLocomotion.Get(entry)
	if loco.Posture != netconfig.PostureStand || loco.Mode != netconfig.ModeNormal {
		t.Fatalf("replicated state %+v, want standing normal", loco)
	}
	if loco.InputY <= 0.5 {
		t.Fatalf("replicated input Y = %v, want the smoothed forward vector", loco.InputY)
	}
}

func TestSessionKeepsNewestIntent(t *testing.T) {
	sess := &session{}

	first := messages.NewMoveIntent(5)
	late := messages.NewMoveIntent(3)
	second := messages.NewMoveIntent(6)

	sess.queueIntent(first)
	sess.queueIntent(late) // stale, must not win
	sess.queueIntent(second)

	got := sess.takeIntent()
	if got == nil || got.Sequence != 6 {
		t.Fatalf("took %+v, want sequence 6", got)
	}
	if sess.takeIntent() != nil {
		t.Fatal("second take returned a stale intent")
	}
}

func TestCharacterHealthClampsAtZero(t *testing.T) {
	h := newCharacterHealth()
	h.ApplyDamage(40)
	if h.Dead() {
		t.Fatal("dead at 60 hit points")
	}
	h.ApplyDamage(-10) // ignored
	h.ApplyDamage(500)
	if !h.Dead() || h.hp != 0 {
		t.Fatalf("hp = %d after overkill, want 0 and dead", h.hp)
	}
}

func TestArenaBodyProbes(t *testing.T) {
	arena := NewArena(0, mgl32.Vec3{0, 2, 0})
	body := arena.NewBody()

	if _, ok := body.CastDown(0.1, 1.5); ok {
		t.Fatal("cast hit from beyond ray range")
	}

	body.SetPosition(mgl32.Vec3{0, 1, 0})
	hit, ok := body.CastDown(0.1, 1.5)
	if !ok {
		t.Fatal("cast missed inside ray range")
	}
	if hit.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("normal = %v, want up", hit.Normal)
	}

	body.SetEnabled(false)
	body.Move(mgl32.Vec3{0, -5, 0})
	if got := body.Position(); got != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("disabled body moved to %v", got)
	}

	body.SetEnabled(true)
	contact := body.Move(mgl32.Vec3{0, -5, 0})
	if !contact.Below {
		t.Fatal("no floor contact after moving through the plane")
	}
	if got := body.Position().Y(); got != 0 {
		t.Fatalf("rest height = %v, want the floor", got)
	}
}

func testConfig() *config.Config {
	return config.Default()
}
