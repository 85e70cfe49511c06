// internal/audio/sounds.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Имена звуков
const (
	SoundShoot        = "shoot"
	SoundEnemyDown    = "enemy_down"
	SoundPlayerHit    = "player_hit"
	SoundPickBomb     = "pick_bomb"
	SoundPickTwoShoot = "pick_two_shoot"
	SoundUseBomb      = "use_bomb"
	SoundGameOver     = "game_over"
	SoundButton       = "button"
)

// SoundNames перечисляет все синтезируемые звуки
var SoundNames = []string{
	SoundShoot,
	SoundEnemyDown,
	SoundPlayerHit,
	SoundPickBomb,
	SoundPickTwoShoot,
	SoundUseBomb,
	SoundGameOver,
	SoundButton,
}

// NewSound собирает поток для звука по имени. Второе значение false,
// если такого звука нет.
func NewSound(name string, rate beep.SampleRate) (beep.Streamer, bool) {
	ms := time.Millisecond
	switch name {
	case SoundShoot:
		return newVolume(tone(1320, 60*ms, WaveSquare, rate), 0.25), true
	case SoundEnemyDown:
		return beep.Mix(
			newVolume(tone(0, 220*ms, WaveNoise, rate), 0.5),
			newVolume(tone(110, 220*ms, WaveSaw, rate), 0.3),
		), true
	case SoundPlayerHit:
		return newVolume(tone(90, 250*ms, WaveSaw, rate), 0.6), true
	case SoundPickBomb:
		return beep.Seq(
			newVolume(tone(440, 80*ms, WaveSine, rate), 0.6),
			newVolume(tone(330, 120*ms, WaveSine, rate), 0.6),
		), true
	case SoundPickTwoShoot:
		return beep.Seq(
			newVolume(tone(660, 70*ms, WaveSine, rate), 0.6),
			newVolume(tone(990, 110*ms, WaveSine, rate), 0.6),
		), true
	case SoundUseBomb:
		return beep.Mix(
			newVolume(tone(0, 600*ms, WaveNoise, rate), 0.7),
			newVolume(tone(55, 600*ms, WaveSine, rate), 0.8),
		), true
	case SoundGameOver:
		return beep.Seq(
			newVolume(tone(523, 200*ms, WaveSine, rate), 0.5),
			newVolume(tone(392, 200*ms, WaveSine, rate), 0.5),
			newVolume(tone(262, 400*ms, WaveSine, rate), 0.5),
		), true
	case SoundButton:
		return newVolume(tone(1000, 30*ms, WaveSine, rate), 0.4), true
	}
	return nil, false
}

// maxRenderSamples ограничивает рендер бесконечных потоков (10 секунд)
const maxRenderSamples = 10 * 44100

// RenderPCM вычитывает поток целиком и возвращает 16-битный
// little-endian стерео PCM, который понимает ebiten/audio.
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	total := 0
	for total < maxRenderSamples {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := toInt16(buf[i][c])
				out = append(out, byte(v), byte(v>>8))
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
