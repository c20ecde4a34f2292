package systems

import (
	"testing"

	"github.com/automoto/vantage-mp/archetypes"
	"github.com/automoto/vantage-mp/collide"
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/cue"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = float32(1.0 / 60.0)

// fakeBody is a collide.Body over an infinite horizontal plane at groundY.
type fakeBody struct {
	pos     mgl32.Vec3
	enabled bool

	hasGround  bool
	groundY    float32
	castHit    bool
	castNormal mgl32.Vec3

	blockedAbove bool

	height  float32
	centerY float32
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		enabled:    true,
		hasGround:  true,
		castHit:    true,
		castNormal: mgl32.Vec3{0, 1, 0},
	}
}

func (b *fakeBody) Move(delta mgl32.Vec3) collide.Contact {
	if !b.enabled {
		return collide.Contact{}
	}
	b.pos = b.pos.Add(delta)

	var c collide.Contact
	if b.hasGround && b.pos.Y() <= b.groundY {
		b.pos[1] = b.groundY
		c.Below = true
		c.Normal = b.castNormal
	}
	return c
}

func (b *fakeBody) Position() mgl32.Vec3       { return b.pos }
func (b *fakeBody) SetPosition(pos mgl32.Vec3) { b.pos = pos }

func (b *fakeBody) Resize(height, centerY float32) {
	b.height = height
	b.centerY = centerY
}

func (b *fakeBody) ClearanceAbove(delta float32) bool { return !b.blockedAbove }

func (b *fakeBody) CastDown(offset, maxDist float32) (collide.Hit, bool) {
	if !b.castHit {
		return collide.Hit{}, false
	}
	return collide.Hit{Normal: b.castNormal, Distance: b.pos.Y() - b.groundY}, true
}

func (b *fakeBody) SetEnabled(enabled bool) { b.enabled = enabled }

// recorder implements every cue collaborator and counts what fired.
type recorder struct {
	crossfades []cue.Clip
	kickbacks  int
	looks      int
	jumps      int
	lands      []bool

	shows      int
	hides      int
	updates    int
	maxChanges []float32

	damage []int
	dead   bool
}

func (r *recorder) Crossfade(ch cue.Channel, clip cue.Clip) {
	r.crossfades = append(r.crossfades, clip)
}

func (r *recorder) Kickback(offset mgl32.Vec3, seconds float32)   { r.kickbacks++ }
func (r *recorder) LookToward(target mgl32.Vec3, seconds float32) { r.looks++ }

func (r *recorder) JumpCue()           { r.jumps++ }
func (r *recorder) LandCue(heavy bool) { r.lands = append(r.lands, heavy) }

func (r *recorder) StaminaShow(value float32)   { r.shows++ }
func (r *recorder) StaminaHide()                { r.hides++ }
func (r *recorder) StaminaUpdate(value float32) { r.updates++ }
func (r *recorder) StaminaMaxChanged(max float32) {
	r.maxChanges = append(r.maxChanges, max)
}

func (r *recorder) ApplyDamage(amount int) { r.damage = append(r.damage, amount) }
func (r *recorder) Dead() bool             { return r.dead }

// harness is one character on a flat plane with the full system chain wired
// in authority order.
type harness struct {
	e     *ecs.ECS
	entry *donburi.Entry
	body  *fakeBody
	rec   *recorder
	cfg   *config.Config
	lad   *LadderSystem

	chain []func(*ecs.ECS)
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	e := ecs.NewECS(donburi.NewWorld())
	clock := archetypes.SpawnClock(e)
	components.Clock.Get(clock).DT = testDT

	body := newFakeBody()
	rec := &recorder{}
	hooks := components.HooksData{
		Animator: rec,
		Camera:   rec,
		Feedback: rec,
		UI:       rec,
		Health:   rec,
	}

	entry, err := archetypes.SpawnCharacter(e, cfg, mgl32.Vec3{}, body, hooks)
	if err != nil {
		t.Fatalf("spawn character: %v", err)
	}

	lad, err := NewLadderSystem(cfg)
	if err != nil {
		t.Fatalf("new ladder system: %v", err)
	}

	h := &harness{e: e, entry: entry, body: body, rec: rec, cfg: cfg, lad: lad}
	h.chain = []func(*ecs.ECS){
		NewIntentSystem(cfg),
		NewGroundSystem(cfg),
		lad.Update,
		NewSlideSystem(cfg),
		NewLocomotionSystem(cfg),
		NewStaminaSystem(cfg),
		NewFallDamageSystem(cfg),
	}
	return h
}

// tick runs one full simulation tick, including the edge flush.
func (h *harness) tick() {
	for _, fn := range h.chain {
		fn(h.e)
	}
	FlushIntent(h.e)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

// settle runs ticks until the character reports ground contact.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 600; i++ {
		h.tick()
		if h.groundState().Grounded {
			return
		}
	}
	t.Fatal("character never grounded")
}

func (h *harness) press(id netconfig.ActionID)   { h.intent().Current[id] = true }
func (h *harness) release(id netconfig.ActionID) { h.intent().Current[id] = false }

func (h *harness) intent() *components.IntentData       { return components.Intent.Get(h.entry) }
func (h *harness) loco() *components.LocomotionData     { return components.Locomotion.Get(h.entry) }
func (h *harness) groundState() *components.GroundData  { return components.Ground.Get(h.entry) }
func (h *harness) slideState() *components.SlideData    { return components.Slide.Get(h.entry) }
func (h *harness) stamina() *components.StaminaData     { return components.Stamina.Get(h.entry) }
func (h *harness) fallState() *components.FallData      { return components.Fall.Get(h.entry) }
func (h *harness) ladderState() *components.LadderData  { return components.Ladder.Get(h.entry) }
func (h *harness) transform() *components.TransformData { return components.Transform.Get(h.entry) }

func defaultTestConfig() *config.Config { return config.Default() }

func approx(got, want, tol float32) bool {
	d := got - want
	return d >= -tol && d <= tol
}
