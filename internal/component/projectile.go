// internal/component/projectile.go
package component

import "go-plane-war/internal/defs"

// Bullet представляет летящую пулю игрока.
// Объекты Bullet живут в пуле и переиспользуются.
type Bullet struct {
	Kind   defs.BulletKind
	Speed  float64
	Damage int
	Active bool // true, пока пуля находится в сцене
}
