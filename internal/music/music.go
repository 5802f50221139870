// Package music synthesizes the background playlist and exposes it as a
// 16-bit little-endian stereo PCM reader.
package music

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate of the generated stream.
const SampleRate = beep.SampleRate(44100)

const bytesPerFrame = 4

// Music — фоновая музыка. Read вызывается из горутины аудио-плеера,
// Start/Stop/SetMuted из игрового цикла.
type Music struct {
	mu       sync.Mutex
	playlist *Playlist
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	buf      [][2]float64
}

// New создает остановленную музыку с громкостью gain (0..1).
func New(tracks []Track, gain float64) *Music {
	pl := NewPlaylist(tracks, SampleRate)
	ctrl := &beep.Ctrl{Streamer: pl, Paused: true}
	return &Music{
		playlist: pl,
		ctrl:     ctrl,
		volume:   newVolume(ctrl, gain),
	}
}

// Start запускает плейлист с начала.
func (m *Music) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl.Paused {
		m.playlist.Reset()
	}
	m.ctrl.Paused = false
}

// Stop ставит музыку на паузу.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctrl.Paused = true
}

// SetMuted глушит звук, не останавливая плейлист.
func (m *Music) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume.Silent = muted
}

// Playing сообщает, идет ли воспроизведение.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.ctrl.Paused
}

// Muted сообщает, заглушен ли звук.
func (m *Music) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume.Silent
}

// Read implements io.Reader over the mixed stream.
func (m *Music) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	m.mu.Lock()
	if cap(m.buf) < frames {
		m.buf = make([][2]float64, frames)
	}
	buf := m.buf[:frames]
	n, _ := m.volume.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	m.mu.Unlock()

	for i, s := range buf {
		l, r := toInt16(s[0]), toInt16(s[1])
		o := i * bytesPerFrame
		p[o] = byte(l)
		p[o+1] = byte(l >> 8)
		p[o+2] = byte(r)
		p[o+3] = byte(r >> 8)
	}
	return frames * bytesPerFrame, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
