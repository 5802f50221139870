// internal/app/game.go
package app

import (
	"errors"
	"log"

	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/defs"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/event"
	"go-target-rush/internal/storage"
	"go-target-rush/internal/system"
	"go-target-rush/internal/utils"
)

// ErrInvalidDimensions is returned for resize events with a non-positive side.
var ErrInvalidDimensions = errors.New("screen dimensions must be positive")

// Options configures a new Game.
type Options struct {
	Seed   int64
	Tuning defs.Tuning
	Bounds component.Bounds
	Store  storage.Store
	Muted  bool
}

// Game holds the simulation owned by the state machine: targets, bubbles,
// counters and queued input.
type Game struct {
	Rng             *utils.PRNGService
	Tuning          defs.Tuning
	Score           *system.ScoreTracker
	Spawner         *system.Spawner
	EventDispatcher *event.Dispatcher
	Store           storage.Store

	Targets []*entity.Target
	Bubbles []*entity.Bubble
	Bounds  component.Bounds
	Frame   int
	Muted   bool

	// SinceSpawn is the time since the last automatic spawn, in ms.
	SinceSpawn  float64
	LastSummary system.Summary

	clicks        []component.Position
	pendingBounds *component.Bounds
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = component.Bounds{Width: config.ScreenWidth, Height: config.ScreenHeight}
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}

	rng := utils.NewPRNGService(opts.Seed)
	dispatcher := event.NewDispatcher()
	highScore := storage.LoadHighScore(opts.Store)

	g := &Game{
		Rng:             rng,
		Tuning:          opts.Tuning,
		Score:           system.NewScoreTracker(opts.Tuning, highScore, dispatcher),
		Spawner:         system.NewSpawner(rng, system.NewPlacer(rng, config.PlacementAttempts), opts.Tuning),
		EventDispatcher: dispatcher,
		Store:           opts.Store,
		Bounds:          opts.Bounds,
		Muted:           opts.Muted,
	}

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.SessionEnded, listener)

	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionEnded:
		summary, ok := e.Data.(system.Summary)
		if !ok || !summary.NewRecord {
			return
		}
		if _, err := storage.SaveHighScore(l.game.Store, summary.HighScore); err != nil {
			log.Printf("failed to persist high score %d: %v", summary.HighScore, err)
			return
		}
		log.Printf("new high score %d saved", summary.HighScore)
	}
}

// QueueClick records a pointer-down to be resolved on the next update.
func (g *Game) QueueClick(x, y float64) {
	g.clicks = append(g.clicks, component.Position{X: x, Y: y})
}

// DrainClicks returns and clears the queued clicks.
func (g *Game) DrainClicks() []component.Position {
	clicks := g.clicks
	g.clicks = nil
	return clicks
}

// QueueResize records new canvas dimensions, applied at the next frame start.
func (g *Game) QueueResize(w, h float64) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidDimensions
	}
	g.pendingBounds = &component.Bounds{Width: w, Height: h}
	return nil
}

// BeginFrame advances the frame counter and applies a queued resize.
func (g *Game) BeginFrame() {
	g.Frame++
	if g.pendingBounds != nil {
		g.Bounds = *g.pendingBounds
		g.pendingBounds = nil
	}
}

// SpawnTarget adds a new target of the given kind at a free spot.
func (g *Game) SpawnTarget(kind entity.Kind) *entity.Target {
	t := g.Spawner.Spawn(g.Targets, kind, g.Score.Level, g.Bounds)
	g.Targets = append(g.Targets, t)
	return t
}

// SpawnDue advances the spawn timer by delta seconds and reports whether a
// spawn every intervalMs is due with room under the target cap.
func (g *Game) SpawnDue(delta, intervalMs float64) bool {
	g.SinceSpawn += delta * 1000
	if g.SinceSpawn > intervalMs && len(g.Targets) < config.MaxTargets {
		g.SinceSpawn = 0
		return true
	}
	return false
}

// UpdateTargets advances every target and drops the expired ones.
// With scoring on, a circle that shrank away unclicked costs a miss.
func (g *Game) UpdateTargets(delta float64, scoring bool) {
	for _, t := range g.Targets {
		missed := t.Update(delta, g.Frame, g.Bounds)
		if missed && scoring {
			penalty := g.Score.RegisterMiss()
			g.addBubble(t.Pos, penalty, 0)
		}
	}
	g.Targets = filterTargets(g.Targets)
}

// UpdateBubbles advances score bubbles and drops the expired ones.
func (g *Game) UpdateBubbles(delta float64) {
	kept := g.Bubbles[:0]
	for _, b := range g.Bubbles {
		b.Update(delta)
		if !b.IsExpired() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.Bubbles); i++ {
		g.Bubbles[i] = nil
	}
	g.Bubbles = kept
}

// ResolveClick hit-tests the topmost live target under (x, y) and scores it.
func (g *Game) ResolveClick(x, y float64) (system.HitResult, bool) {
	for i := len(g.Targets) - 1; i >= 0; i-- {
		out, ok := g.Targets[i].Hit(x, y)
		if !ok {
			continue
		}
		res := g.Score.ResolveHit(out)
		g.addBubble(out.Pos, res.Points, res.Combo)
		return res, true
	}
	return system.HitResult{}, false
}

// TargetAt reports whether a live target lies under (x, y).
func (g *Game) TargetAt(x, y float64) bool {
	for _, t := range g.Targets {
		if t.Contains(x, y) {
			return true
		}
	}
	return false
}

// PopAt kills the topmost live target under (x, y) without scoring.
func (g *Game) PopAt(x, y float64) bool {
	for i := len(g.Targets) - 1; i >= 0; i-- {
		if g.Targets[i].Pop(x, y) {
			return true
		}
	}
	return false
}

// ClearEntities drops all targets and bubbles.
func (g *Game) ClearEntities() {
	g.Targets = nil
	g.Bubbles = nil
	g.SinceSpawn = 0
}

// StartSession prepares the counters for a new round.
func (g *Game) StartSession() {
	g.Score.ResetSpawnFrequency()
	g.SinceSpawn = 0
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionStarted})
	g.EventDispatcher.Dispatch(event.Event{Type: event.MusicStart})
}

// EndSession records the summary, resets counters and clears the field.
func (g *Game) EndSession() system.Summary {
	summary := g.Score.Reset()
	g.LastSummary = summary
	g.ClearEntities()
	log.Printf("game over: score %d, level %d, max combo %d", summary.Score, summary.Level, summary.MaxCombo)
	g.EventDispatcher.Dispatch(event.Event{Type: event.MusicStop})
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: summary})
	return summary
}

// ToggleMute flips the mute flag and forwards the intent to audio.
func (g *Game) ToggleMute() {
	g.Muted = !g.Muted
	g.EventDispatcher.Dispatch(event.Event{Type: event.MuteToggle, Data: g.Muted})
}

func (g *Game) addBubble(pos component.Position, value, combo int) {
	g.Bubbles = append(g.Bubbles, entity.NewBubble(pos, value, combo, g.Bounds.Min()))
}

func filterTargets(targets []*entity.Target) []*entity.Target {
	kept := targets[:0]
	for _, t := range targets {
		if !t.IsExpired() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(targets); i++ {
		targets[i] = nil
	}
	return kept
}
