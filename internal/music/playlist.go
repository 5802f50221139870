package music

import (
	"time"

	"github.com/gopxl/beep"
)

// Note — одна нота трека. Freq 0 означает паузу.
type Note struct {
	Freq  float64
	Beats float64
}

// Track — короткая мелодия, которая играет целиком, прежде чем начнется следующая.
type Track struct {
	Name  string
	BPM   float64
	Wave  WaveType
	Notes []Note
}

const (
	noteAttack  = 8 * time.Millisecond
	noteRelease = 40 * time.Millisecond
)

// Duration — длина трека.
func (t Track) Duration() time.Duration {
	var total time.Duration
	for _, n := range t.Notes {
		total += t.beat(n.Beats)
	}
	return total
}

func (t Track) beat(beats float64) time.Duration {
	bpm := t.BPM
	if bpm <= 0 {
		bpm = 120
	}
	return time.Duration(beats * float64(time.Minute) / bpm)
}

// Streamer собирает трек в последовательность нот.
func (t Track) Streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(t.Notes))
	for _, n := range t.Notes {
		d := t.beat(n.Beats)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, NewEnvelope(NewOscillator(n.Freq, d, t.Wave, rate), d, noteAttack, noteRelease, rate))
	}
	return beep.Seq(parts...)
}

// Playlist бесконечно проигрывает треки по кругу.
type Playlist struct {
	tracks  []Track
	rate    beep.SampleRate
	index   int
	current beep.Streamer
}

// NewPlaylist создает плейлист. Пустой список треков дает тишину.
func NewPlaylist(tracks []Track, rate beep.SampleRate) *Playlist {
	p := &Playlist{tracks: tracks, rate: rate}
	p.Reset()
	return p
}

// Reset возвращает плейлист к началу первого трека.
func (p *Playlist) Reset() {
	p.index = 0
	p.current = nil
	if len(p.tracks) > 0 {
		p.current = p.tracks[0].Streamer(p.rate)
	}
}

func (p *Playlist) next() {
	p.index = (p.index + 1) % len(p.tracks)
	p.current = p.tracks[p.index].Streamer(p.rate)
}

func (p *Playlist) Stream(samples [][2]float64) (n int, ok bool) {
	if p.current == nil {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}
	// защита от треков нулевой длины
	empty := 0
	for n < len(samples) && empty <= len(p.tracks) {
		m, more := p.current.Stream(samples[n:])
		n += m
		if m > 0 {
			empty = 0
		}
		if !more || m == 0 {
			empty++
			p.next()
		}
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (p *Playlist) Err() error { return nil }

// notes, Hz
const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	g3 = 196.00
	a3 = 220.00
)

// DefaultPlaylist — фоновая музыка режима игры.
func DefaultPlaylist() []Track {
	return []Track{
		{
			Name: "rush",
			BPM:  150,
			Wave: WaveSquare,
			Notes: []Note{
				{c4, 0.5}, {e4, 0.5}, {g4, 0.5}, {c5, 0.5},
				{g4, 0.5}, {e4, 0.5}, {c4, 1},
				{d4, 0.5}, {g4, 0.5}, {a4, 0.5}, {d5, 0.5},
				{a4, 0.5}, {g4, 0.5}, {0, 1},
			},
		},
		{
			Name: "drift",
			BPM:  120,
			Wave: WaveTriangle,
			Notes: []Note{
				{a3, 1}, {c4, 0.5}, {e4, 0.5}, {a4, 1},
				{g3, 1}, {d4, 0.5}, {g4, 0.5}, {e5, 1},
				{c5, 0.5}, {a4, 0.5}, {e4, 1}, {0, 1},
			},
		},
	}
}
