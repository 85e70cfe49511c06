package interfaces

// SoundPlayer проигрывает звуковые эффекты. Реализация - audio.Manager.
type SoundPlayer interface {
	Play(name string, volume float64)
}
