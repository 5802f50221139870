// Package audio plays the background music through ebiten's audio device and
// follows the game's music intents.
package audio

import (
	"fmt"
	"log"

	"go-target-rush/internal/event"
	"go-target-rush/internal/music"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Service — подписчик на события музыки. Владеет аудио-плеером ebiten.
type Service struct {
	ctx        *audio.Context
	player     *audio.Player
	music      *music.Music
	dispatcher *event.Dispatcher
}

// NewService открывает аудио-контекст и готовит плеер поверх m.
// Контекст ebiten можно создать только один раз за процесс.
func NewService(m *music.Music) (*Service, error) {
	ctx := audio.NewContext(int(music.SampleRate))
	player, err := ctx.NewPlayer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	return &Service{ctx: ctx, player: player, music: m}, nil
}

// Subscribe подписывает сервис на события музыки.
func (s *Service) Subscribe(d *event.Dispatcher) {
	s.dispatcher = d
	d.Subscribe(event.MusicStart, s)
	d.Subscribe(event.MusicStop, s)
	d.Subscribe(event.MuteToggle, s)
}

// OnEvent реализует интерфейс event.Listener.
func (s *Service) OnEvent(e event.Event) {
	switch e.Type {
	case event.MusicStart:
		if s.music.Playing() {
			return
		}
		s.music.Start()
		s.player.Play()
	case event.MusicStop:
		s.music.Stop()
		s.player.Pause()
	case event.MuteToggle:
		muted, ok := e.Data.(bool)
		if !ok {
			return
		}
		s.music.SetMuted(muted)
		log.Printf("audio muted: %v", s.music.Muted())
	}
}

// Close отписывается от событий и освобождает плеер.
func (s *Service) Close() error {
	if s.dispatcher != nil {
		for _, t := range []event.EventType{event.MusicStart, event.MusicStop, event.MuteToggle} {
			s.dispatcher.Unsubscribe(t, s)
		}
		s.dispatcher = nil
	}
	s.player.Pause()
	return s.player.Close()
}
