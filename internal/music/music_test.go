package music

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		samples := make([][2]float64, 1000)
		n, _ := osc.Stream(samples)
		if n != rate.N(10*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(10*time.Millisecond))
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("wave %d: sample %d = %f", wave, i, samples[i][0])
			}
		}
		if m, ok := osc.Stream(samples); m != 0 || ok {
			t.Errorf("wave %d: exhausted oscillator returned %d, %v", wave, m, ok)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, rate), d, 5*time.Millisecond, 10*time.Millisecond, rate)
	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d, want %d", n, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if v := samples[n-1][0]; v > 0.01 || v < -0.01 {
		t.Errorf("last sample = %f, want near 0", v)
	}
}

func TestTrackDuration(t *testing.T) {
	tr := Track{BPM: 120, Notes: []Note{{440, 1}, {0, 0.5}, {220, 0.5}}}
	if got := tr.Duration(); got != time.Second {
		t.Errorf("duration = %v, want 1s", got)
	}
}

func TestPlaylistAdvancesAndLoops(t *testing.T) {
	rate := beep.SampleRate(1000)
	tracks := []Track{
		{BPM: 60, Notes: []Note{{100, 0.1}}},
		{BPM: 60, Notes: []Note{{200, 0.1}}},
	}
	pl := NewPlaylist(tracks, rate)
	samples := make([][2]float64, 150)
	n, ok := pl.Stream(samples)
	if n != 150 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if pl.index != 1 {
		t.Errorf("index = %d, want 1", pl.index)
	}
	pl.Stream(samples)
	if pl.index != 0 {
		t.Errorf("index after loop = %d, want 0", pl.index)
	}
	pl.Reset()
	if pl.index != 0 {
		t.Error("Reset did not rewind")
	}
}

func TestEmptyPlaylistIsSilent(t *testing.T) {
	pl := NewPlaylist(nil, SampleRate)
	samples := [][2]float64{{1, 1}, {1, 1}}
	if n, ok := pl.Stream(samples); n != 2 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if samples[0] != [2]float64{} {
		t.Error("expected silence")
	}
}

func loudest(buf []byte) int {
	var peak int
	for i := 0; i+1 < len(buf); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(buf[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

func TestReadFollowsPlaybackAndMute(t *testing.T) {
	m := New(DefaultPlaylist(), 0.5)
	buf := make([]byte, 4096)

	n, err := m.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if loudest(buf) != 0 {
		t.Error("stopped music produced sound")
	}

	m.Start()
	if !m.Playing() {
		t.Fatal("Start did not start playback")
	}
	m.Read(buf)
	if loudest(buf) == 0 {
		t.Error("playing music is silent")
	}

	m.SetMuted(true)
	if !m.Muted() {
		t.Fatal("SetMuted(true) ignored")
	}
	m.Read(buf)
	if loudest(buf) != 0 {
		t.Error("muted music produced sound")
	}

	m.Stop()
	if m.Playing() {
		t.Error("Stop did not stop playback")
	}
}

func TestReadShortBuffer(t *testing.T) {
	m := New(DefaultPlaylist(), 1)
	if n, err := m.Read(make([]byte, 3)); n != 0 || err != nil {
		t.Errorf("Read(3 bytes) = %d, %v", n, err)
	}
	if n, _ := m.Read(make([]byte, 10)); n != 8 {
		t.Errorf("Read(10 bytes) = %d, want 8", n)
	}
}
