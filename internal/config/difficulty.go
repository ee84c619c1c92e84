package config

// Quota returns the number of eggs needed to finish the given level.
func (p LevelPolicy) Quota(level int) int {
	if level < 1 {
		level = 1
	}
	return p.BaseQuota + (level-1)*p.QuotaStep
}

// PoolSize returns how many egg slots are eligible to fall during level setup,
// capped at the physical pool capacity.
func (p LevelPolicy) PoolSize(level int) int {
	size := p.InitialEggs
	if level > 1 {
		size = p.PoolBase + level*p.PoolStep
	}
	return p.capToPool(size)
}

// EscalationTarget returns the egg count requested when difficulty escalates
// into the given level. It uses its own cap, independent of the pool capacity.
func (p LevelPolicy) EscalationTarget(level int) int {
	target := p.PoolBase + level*p.PoolStep
	if target > p.EscalationCap {
		target = p.EscalationCap
	}
	return target
}

// capToPool limits a slot count to [0, PoolCapacity].
func (p LevelPolicy) capToPool(n int) int {
	if n > p.PoolCapacity {
		return p.PoolCapacity
	}
	if n < 0 {
		return 0
	}
	return n
}
