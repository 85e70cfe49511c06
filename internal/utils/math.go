// internal/utils/math.go
package utils

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlap проверяет пересечение двух прямоугольников, заданных центром и половинами сторон.
// Касание границами пересечением не считается.
func Overlap(ax, ay, ahw, ahh, bx, by, bhw, bhh float64) bool {
	return ax-ahw < bx+bhw && bx-bhw < ax+ahw &&
		ay-ahh < by+bhh && by-bhh < ay+ahh
}

// WorldToScreen переводит мировые координаты (центр, Y вверх) в экранные.
func WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	return x + float64(screenW)/2, float64(screenH)/2 - y
}

// ScreenToWorld - обратное преобразование.
func ScreenToWorld(sx, sy float64, screenW, screenH int) (float64, float64) {
	return sx - float64(screenW)/2, float64(screenH)/2 - sy
}
