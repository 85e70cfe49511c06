package component

// BossPhase - фаза сценария движения босса.
type BossPhase int

const (
	BossDescending BossPhase = iota
	BossPatrolling
	BossDashing
	BossReturning
)

func (p BossPhase) String() string {
	switch p {
	case BossDescending:
		return "descending"
	case BossPatrolling:
		return "patrolling"
	case BossDashing:
		return "dashing"
	case BossReturning:
		return "returning"
	}
	return "unknown"
}

// Boss - дополнительное состояние врага-босса.
type Boss struct {
	Phase        BossPhase
	DescendSpeed float64
	PatrolSpeed  float64 // Знак задаёт направление
	DashTimer    float64
}
