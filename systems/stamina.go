package systems

import (
	"github.com/automoto/vantage-mp/components"
	"github.com/automoto/vantage-mp/config"
	"github.com/automoto/vantage-mp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewStaminaSystem returns the stamina resource update. Sustained running
// drains the resource and re-arms the regeneration wait; once the wait has
// elapsed and auto-regen is on, the resource climbs back toward max. The
// value never leaves [0, max].
func NewStaminaSystem(cfg *config.Config) func(*ecs.ECS) {
	stCfg := cfg.Stamina

	return func(e *ecs.ECS) {
		if !stCfg.Enabled {
			return
		}
		dt := components.DeltaTime(e.World)

		components.Stamina.Each(e.World, func(entry *donburi.Entry) {
			st := components.Stamina.Get(entry)
			loco := components.Locomotion.Get(entry)
			hooks := components.Hooks.Get(entry)

			switch {
			case loco.Running && !loco.InWater:
				st.Current = gamemath.MoveToward(st.Current, 0, stCfg.RunDrainRate*dt)
				st.RegenWait = stCfg.RegenAfterSeconds
				if st.Current <= 0 {
					// Running ends on the tick the resource empties,
					// not on the next eligibility check.
					loco.Running = false
				}
			case st.RegenWait > 0:
				st.RegenWait -= dt
			case stCfg.AutoRegen && st.Current < st.Max:
				st.Current = gamemath.MoveToward(st.Current, st.Max, stCfg.RegenRate*dt)
			}

			syncStaminaUI(st, hooks)
		})
	}
}

// SpendJumpStamina deducts the lump jump cost, clamped at zero, and re-arms
// the regeneration wait.
func SpendJumpStamina(st *components.StaminaData, stCfg config.StaminaConfig, inWater bool) {
	if !stCfg.Enabled {
		return
	}
	cost := stCfg.JumpCost
	if inWater {
		cost = stCfg.WaterJumpCost
	}
	st.Current = gamemath.Clamp(st.Current-cost, 0, st.Max)
	st.RegenWait = stCfg.RegenAfterSeconds
}

// SetStaminaMax changes the resource ceiling at runtime, clamping the
// current value and notifying the UI collaborator.
func SetStaminaMax(entry *donburi.Entry, max float32) {
	st := components.Stamina.Get(entry)
	hooks := components.Hooks.Get(entry)

	st.Max = max
	st.Current = gamemath.Clamp(st.Current, 0, max)
	hooks.UI.StaminaMaxChanged(max)
	syncStaminaUI(st, hooks)
}

// syncStaminaUI fires show/hide on crossings between "fully regenerated" and
// not, and a slider update while the bar is visible.
func syncStaminaUI(st *components.StaminaData, hooks *components.HooksData) {
	full := st.Current >= st.Max
	switch {
	case !full && !st.Shown:
		st.Shown = true
		hooks.UI.StaminaShow(st.Current)
	case full && st.Shown:
		st.Shown = false
		hooks.UI.StaminaHide()
	case st.Shown:
		hooks.UI.StaminaUpdate(st.Current)
	}
}
