// Package config provides YAML-based game configuration loading, difficulty
// presets and the level progression policy.
package config

// ChickenConfig contains all configuration for the game.
type ChickenConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Ball     BallConfig     `yaml:"ball"`
	Platform PlatformConfig `yaml:"platform"`
	Meteor   MeteorConfig   `yaml:"meteor"`
	Eggs     EggConfig      `yaml:"eggs"`
	Levels   LevelPolicy    `yaml:"levels"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	MeteorGravity    float64 `yaml:"meteor_gravity"`    // Added to meteor velocity every tick
	MaxDelta         float64 `yaml:"max_delta"`         // Upper bound for a tick's delta time in seconds
	SprintMultiplier float64 `yaml:"sprint_multiplier"` // Chicken speed factor while sprinting
	BoostMultiplier  float64 `yaml:"boost_multiplier"`  // Bag speed factor while boosting
}

// BallConfig defines the bag. Its size comes from the sprite.
type BallConfig struct {
	Sprite string  `yaml:"sprite"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	SpeedX float64 `yaml:"speed_x"` // World units per second
	SpeedY float64 `yaml:"speed_y"` // World units per second, positive = up
}

// PlatformConfig defines the player-controlled chicken. Its size comes from the sprite.
type PlatformConfig struct {
	Sprite string  `yaml:"sprite"`
	StartX float64 `yaml:"start_x"`
	Speed  float64 `yaml:"speed"` // World units per second
}

// MeteorConfig defines the decorative falling meteor.
type MeteorConfig struct {
	Sprite string  `yaml:"sprite"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EggConfig defines collectible eggs.
type EggConfig struct {
	Sprite         string  `yaml:"sprite"`
	Size           float64 `yaml:"size"`
	SpawnY         float64 `yaml:"spawn_y"`       // Top of the first slot's spawn position
	Stagger        float64 `yaml:"stagger"`       // Extra height per slot index
	GravitySteps   int     `yaml:"gravity_steps"` // Gravity is rand(1..steps)/divisor
	GravityDivisor float64 `yaml:"gravity_divisor"`
}

// LevelPolicy holds the constants of the quota and pool-size formulas.
// Setup and escalation use separate caps; both are kept configurable.
type LevelPolicy struct {
	BaseQuota     int     `yaml:"base_quota"`
	QuotaStep     int     `yaml:"quota_step"`
	InitialEggs   int     `yaml:"initial_eggs"` // Pool size on level 1
	PoolBase      int     `yaml:"pool_base"`    // Pool size is pool_base + level*pool_step after level 1
	PoolStep      int     `yaml:"pool_step"`
	PoolCapacity  int     `yaml:"pool_capacity"`  // Physical number of egg slots
	EscalationCap int     `yaml:"escalation_cap"` // Cap used when escalating difficulty
	SpeedFactor   float64 `yaml:"speed_factor"`   // Bag/chicken/meteor speed multiplier per level
	GravityFactor float64 `yaml:"gravity_factor"` // Egg gravity multiplier per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
