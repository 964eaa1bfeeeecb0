package models

// Pressure is the four-level resource signal driving admission limits
// and pool sizing. Computed by the cleanup manager, consumed by the
// concurrency controller and the sub-agent pool.
type Pressure string

const (
	PressureNormal   Pressure = "normal"
	PressureElevated Pressure = "elevated"
	PressureHigh     Pressure = "high"
	PressureCritical Pressure = "critical"
)

// Limit returns the effective concurrent-start limit for this pressure
// level. Unknown values fall back to the most conservative limit.
func (p Pressure) Limit() int {
	switch p {
	case PressureNormal:
		return 4
	case PressureElevated:
		return 3
	case PressureHigh:
		return 2
	case PressureCritical:
		return 1
	default:
		return 1
	}
}

// AllowsPooling reports whether released sub-agents may be recycled into
// the pool instead of destroyed. Pooling stops above elevated pressure.
func (p Pressure) AllowsPooling() bool {
	return p == PressureNormal || p == PressureElevated
}

// Severity orders pressure levels from normal (0) to critical (3).
func (p Pressure) Severity() int {
	switch p {
	case PressureElevated:
		return 1
	case PressureHigh:
		return 2
	case PressureCritical:
		return 3
	default:
		return 0
	}
}

// Escalate returns the next level up, saturating at critical.
func (p Pressure) Escalate() Pressure {
	switch p {
	case PressureNormal:
		return PressureElevated
	case PressureElevated:
		return PressureHigh
	default:
		return PressureCritical
	}
}

// IsValid checks if the pressure is one of the four levels.
func (p Pressure) IsValid() bool {
	switch p {
	case PressureNormal, PressureElevated, PressureHigh, PressureCritical:
		return true
	default:
		return false
	}
}
