package component

// Background - две плитки фона, которые прокручиваются вниз по очереди.
type Background struct {
	TileY [2]float64
}
