// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragTracker превращает экранные позиции указателя в смещения
// в мировых координатах (ось Y вверх).
type dragTracker struct {
	active       bool
	lastX, lastY int
}

func (d *dragTracker) press(x, y int) {
	d.active = true
	d.lastX, d.lastY = x, y
}

// move возвращает смещение с прошлой позиции.
func (d *dragTracker) move(x, y int) (dx, dy float64) {
	if !d.active {
		return 0, 0
	}
	dx = float64(x - d.lastX)
	dy = -float64(y - d.lastY)
	d.lastX, d.lastY = x, y
	return dx, dy
}

// release завершает перетаскивание. false, если его не было.
func (d *dragTracker) release() bool {
	was := d.active
	d.active = false
	return was
}

// pointer объединяет мышь и первое касание.
type pointer struct {
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

// pointerEvent - что произошло с указателем за кадр
type pointerEvent struct {
	pressed  bool
	released bool
	down     bool
	x, y     int
}

func (p *pointer) poll() pointerEvent {
	var ev pointerEvent

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if !p.touching && len(p.touchIDs) > 0 {
		p.touchID = p.touchIDs[0]
		p.touching = true
		ev.pressed = true
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			ev.released = true
			ev.x, ev.y = inpututil.TouchPositionInPreviousTick(p.touchID)
			return ev
		}
		ev.down = true
		ev.x, ev.y = ebiten.TouchPosition(p.touchID)
		return ev
	}

	ev.x, ev.y = ebiten.CursorPosition()
	ev.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ev.released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ev.down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return ev
}

// clicked - кнопка мыши или касание отпущены в этом кадре.
func clicked() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y = inpututil.TouchPositionInPreviousTick(id)
		return x, y, true
	}
	return 0, 0, false
}
