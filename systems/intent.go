package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/automoto/vantage-mp/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewIntentSystem returns the input sampler: it scrubs and clamps the raw
// device vector and chases it with the smoothed vector at the configured
// rate. A tick with no input read leaves the raw vector at zero, which is
// exactly "no input this tick".
func NewIntentSystem(cfg *config.Config) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		dt := components.DeltaTime(e.World)
		rate := cfg.Locomotion.InputSmoothing * dt

		components.Intent.Each(e.World, func(entry *donburi.Entry) {
			in := components.Intent.Get(entry)

			raw := gamemath.Sanitize2(in.Raw)
			raw[0] = gamemath.Clamp(raw[0], -1, 1)
			raw[1] = gamemath.Clamp(raw[1], -1, 1)
			in.Raw = raw

			in.Smoothed = gamemath.MoveTowardVec2(in.Smoothed, raw, rate)
		})
	}
}

// FlushIntent shifts the per-action edge history. The authority runs it once
// per full tick, after all consumers, so JustPressed holds for exactly one
// tick regardless of sub-stepping.
func FlushIntent(e *ecs.ECS) {
	components.Intent.Each(e.World, func(entry *donburi.Entry) {
		in := components.Intent.Get(entry)
		in.Previous = in.Current
		in.Consumed = [netconfig.ActionCount]bool{}
	})
}
