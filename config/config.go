// Package config contains all tuning values for the locomotion core. Every
// value has a default; a YAML file can overlay any subset of them.
package config

// PostureConfig holds the per-posture collider and movement parameters.
type PostureConfig struct {
	Height    float32 `yaml:"height"`     // collider height
	CenterY   float32 `yaml:"center_y"`   // collider vertical center
	EyeHeight float32 `yaml:"eye_height"` // camera eye target above feet
	Speed     float32 `yaml:"speed"`      // movement speed cap
}

// LocomotionConfig contains the state machine and integration parameters.
type LocomotionConfig struct {
	Stand  PostureConfig `yaml:"stand"`
	Crouch PostureConfig `yaml:"crouch"`
	Prone  PostureConfig `yaml:"prone"`

	RunSpeed   float32 `yaml:"run_speed"`
	WaterSpeed float32 `yaml:"water_speed"`

	// RunRampRate is how fast the active speed moves toward its target,
	// in units/second^2; the run transition is ramped, never snapped.
	RunRampRate float32 `yaml:"run_ramp_rate"`

	JumpHeight        float32 `yaml:"jump_height"`
	Gravity           float32 `yaml:"gravity"`
	GravityMultiplier float32 `yaml:"gravity_multiplier"`

	// AntiBump is a constant downward bias applied while grounded so the
	// character adheres to uneven ground.
	AntiBump float32 `yaml:"anti_bump"`

	// InputSmoothing is the rate the smoothed input vector chases the raw
	// device vector, per second.
	InputSmoothing float32 `yaml:"input_smoothing"`

	// PostureCooldown debounces posture change requests, in seconds.
	PostureCooldown float32 `yaml:"posture_cooldown"`

	// AirControl permits lateral steering while airborne.
	AirControl bool `yaml:"air_control"`

	// Fly mode: entered when airborne with no ground contact for
	// FlyAfterSeconds, if enabled; exited the instant ground is detected.
	FlyEnabled      bool    `yaml:"fly_enabled"`
	FlyAfterSeconds float32 `yaml:"fly_after_seconds"`
	FlySpeed        float32 `yaml:"fly_speed"`
	FlyBlendRate    float32 `yaml:"fly_blend_rate"`

	// Slope classification.
	SlopeLimit  float32 `yaml:"slope_limit"`  // degrees
	SlopeMargin float32 `yaml:"slope_margin"` // safety margin under the limit
	FootOffset  float32 `yaml:"foot_offset"`  // down-ray origin below feet
	GroundRay   float32 `yaml:"ground_ray"`   // down-ray length
}

// EffectiveGravity returns the gravity magnitude used for integration.
func (c LocomotionConfig) EffectiveGravity() float32 {
	return c.Gravity * c.GravityMultiplier
}

// StaminaConfig tunes the depletable run/jump resource.
type StaminaConfig struct {
	Enabled bool    `yaml:"enabled"`
	Max     float32 `yaml:"max"`

	RunDrainRate  float32 `yaml:"run_drain_rate"` // per second while running
	JumpCost      float32 `yaml:"jump_cost"`
	WaterJumpCost float32 `yaml:"water_jump_cost"`

	AutoRegen         bool    `yaml:"auto_regen"`
	RegenAfterSeconds float32 `yaml:"regen_after_seconds"`
	RegenRate         float32 `yaml:"regen_rate"` // per second once waiting ends
}

// SlideConfig tunes steep-slope sliding and post-slide decay.
type SlideConfig struct {
	MaxSpeed     float32 `yaml:"max_speed"`
	Acceleration float32 `yaml:"acceleration"` // ramp toward max, per second
	Friction     float32 `yaml:"friction"`     // downslope force constant
	Control      float32 `yaml:"control"`      // lateral steering multiplier

	DecayRate      float32 `yaml:"decay_rate"`      // post-slide, per second
	ClearThreshold float32 `yaml:"clear_threshold"` // magnitude below which the vector clears
}

// FallConfig tunes fall damage. Stand has its own threshold; Crouch and
// Prone deliberately share one.
type FallConfig struct {
	DamageMultiplier     float32 `yaml:"damage_multiplier"`
	StandThreshold       float32 `yaml:"stand_threshold"`
	CrouchProneThreshold float32 `yaml:"crouch_prone_threshold"`
	MinNotice            float32 `yaml:"min_notice"` // below this, no cue at all

	KickbackPitch   float32 `yaml:"kickback_pitch"` // degrees
	KickbackSeconds float32 `yaml:"kickback_seconds"`
}

// LadderConfig tunes ladder traversal.
type LadderConfig struct {
	AutoMoveSpeed float32 `yaml:"auto_move_speed"`
	ClimbSpeed    float32 `yaml:"climb_speed"`
	Epsilon       float32 `yaml:"epsilon"` // alignment convergence distance
	LookSeconds   float32 `yaml:"look_seconds"`
}

// NetConfig tunes the replication session.
type NetConfig struct {
	Port       uint   `yaml:"port"`
	TickRate   int    `yaml:"tick_rate"`
	ServerName string `yaml:"server_name"`
	Version    string `yaml:"version"` // required client version, empty accepts any
}

// Config is the root configuration tree.
type Config struct {
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Stamina    StaminaConfig    `yaml:"stamina"`
	Slide      SlideConfig      `yaml:"slide"`
	Fall       FallConfig       `yaml:"fall"`
	Ladder     LadderConfig     `yaml:"ladder"`
	Net        NetConfig        `yaml:"net"`
}

// Posture returns the posture block for an index ordered Stand, Crouch,
// Prone, matching netconfig.PostureID.
func (c *LocomotionConfig) Posture(i int) PostureConfig {
	switch i {
	case 1:
		return c.Crouch
	case 2:
		return c.Prone
	default:
		return c.Stand
	}
}

// Default returns the full default configuration.
func Default() *Config {
	return &Config{
		Locomotion: LocomotionConfig{
			Stand:  PostureConfig{Height: 1.8, CenterY: 0.9, EyeHeight: 1.65, Speed: 4},
			Crouch: PostureConfig{Height: 1.0, CenterY: 0.5, EyeHeight: 0.85, Speed: 2},
			Prone:  PostureConfig{Height: 0.5, CenterY: 0.25, EyeHeight: 0.3, Speed: 1},

			RunSpeed:   8,
			WaterSpeed: 2.5,

			RunRampRate: 12,

			JumpHeight:        7,
			Gravity:           24,
			GravityMultiplier: 2,
			AntiBump:          4.5,

			InputSmoothing:  10,
			PostureCooldown: 0.3,

			AirControl: false,

			FlyEnabled:      false,
			FlyAfterSeconds: 10,
			FlySpeed:        10,
			FlyBlendRate:    8,

			SlopeLimit:  45,
			SlopeMargin: 0.1,
			FootOffset:  0.1,
			GroundRay:   1.5,
		},
		Stamina: StaminaConfig{
			Enabled: true,
			Max:     100,

			RunDrainRate:  12,
			JumpCost:      15,
			WaterJumpCost: 25,

			AutoRegen:         true,
			RegenAfterSeconds: 2,
			RegenRate:         20,
		},
		Slide: SlideConfig{
			MaxSpeed:     14,
			Acceleration: 10,
			Friction:     18,
			Control:      0.4,

			DecayRate:      10,
			ClearThreshold: 0.5,
		},
		Fall: FallConfig{
			DamageMultiplier:     5,
			StandThreshold:       8,
			CrouchProneThreshold: 4,
			MinNotice:            2,

			KickbackPitch:   12,
			KickbackSeconds: 0.25,
		},
		Ladder: LadderConfig{
			AutoMoveSpeed: 3,
			ClimbSpeed:    2,
			Epsilon:       0.05,
			LookSeconds:   0.4,
		},
		Net: NetConfig{
			Port:       7373,
			TickRate:   20,
			ServerName: "Vantage Server",
		},
	}
}
