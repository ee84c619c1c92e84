package config

import (
	_ "embed"
)

//go:embed defaults/chicken.yaml
var defaultChickenYAML []byte

// DefaultChickenConfig returns the built-in configuration.
func DefaultChickenConfig() ChickenConfig {
	return ChickenConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 20,
		},
		Physics: PhysicsConfig{
			MeteorGravity:    0.2,
			MaxDelta:         0.1,
			SprintMultiplier: 3,
			BoostMultiplier:  3,
		},
		Ball: BallConfig{
			Sprite: "bag",
			StartX: 500,
			StartY: 500,
			SpeedX: 200,
			SpeedY: 150,
		},
		Platform: PlatformConfig{
			Sprite: "chicken",
			StartX: 400,
			Speed:  400,
		},
		Meteor: MeteorConfig{
			Sprite: "meteor",
			StartX: 200,
			StartY: 0,
			Width:  30,
			Height: 30,
		},
		Eggs: EggConfig{
			Sprite:         "egg",
			Size:           20,
			SpawnY:         -100,
			Stagger:        50,
			GravitySteps:   5,
			GravityDivisor: 50,
		},
		Levels: LevelPolicy{
			BaseQuota:     10,
			QuotaStep:     2,
			InitialEggs:   10,
			PoolBase:      10,
			PoolStep:      2,
			PoolCapacity:  10,
			EscalationCap: 20,
			SpeedFactor:   1.1,
			GravityFactor: 1.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChickenYAML
}
