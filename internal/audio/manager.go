// internal/audio/manager.go
package audio

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Bank - заранее отрендеренные звуки (PCM 16 бит, стерео)
type Bank map[string][]byte

// NewBank синтезирует все звуки из SoundNames
func NewBank(rate beep.SampleRate) Bank {
	bank := make(Bank, len(SoundNames))
	for _, name := range SoundNames {
		s, ok := NewSound(name, rate)
		if !ok {
			continue
		}
		bank[name] = RenderPCM(s)
	}
	return bank
}

// Manager проигрывает звуки через ebiten/audio
type Manager struct {
	ctx     *audio.Context
	bank    Bank
	muted   bool
	playing []*audio.Player
}

// NewManager создаёт аудио-контекст и рендерит банк звуков.
// При muted=true устройство не открывается.
func NewManager(muted bool) *Manager {
	m := &Manager{muted: muted}
	if muted {
		return m
	}
	m.ctx = audio.CurrentContext()
	if m.ctx == nil {
		m.ctx = audio.NewContext(SampleRate)
	}
	m.bank = NewBank(beep.SampleRate(SampleRate))
	log.Printf("Audio: %d sounds synthesized", len(m.bank))
	return m
}

func (m *Manager) SetMuted(muted bool) {
	if m == nil {
		return
	}
	if !muted && m.ctx == nil {
		// Контекст не создавался, включить звук нельзя
		return
	}
	m.muted = muted
}

func (m *Manager) Muted() bool {
	return m == nil || m.muted
}

// Play запускает звук с громкостью volume (0..1)
func (m *Manager) Play(name string, volume float64) {
	if m == nil || m.muted || m.ctx == nil {
		return
	}
	pcm, ok := m.bank[name]
	if !ok {
		log.Printf("Audio: unknown sound %q", name)
		return
	}
	m.prune()
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
	// Держим ссылку, пока звук играет
	m.playing = append(m.playing, p)
}

// prune закрывает доигравшие плееры
func (m *Manager) prune() {
	alive := m.playing[:0]
	for _, p := range m.playing {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(alive); i < len(m.playing); i++ {
		m.playing[i] = nil
	}
	m.playing = alive
}
