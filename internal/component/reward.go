package component

import "go-plane-war/internal/defs"

// Reward - падающий бонус.
type Reward struct {
	Kind defs.RewardKind
}
