package app

import (
	"errors"
	"testing"
	"time"

	"go-target-rush/internal/component"
	"go-target-rush/internal/defs"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/event"
	"go-target-rush/internal/storage"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{
		Seed:   1,
		Tuning: defs.DefaultTuning(),
		Bounds: component.Bounds{Width: 800, Height: 600},
		Store:  storage.NewMemoryStore(),
	})
}

func TestCleanHitScoresFifty(t *testing.T) {
	g := newTestGame(t)
	target := g.SpawnTarget(entity.KindCircle)

	res, ok := g.ResolveClick(target.Pos.X, target.Pos.Y)
	if !ok {
		t.Fatal("click at the center missed")
	}
	if res.Points != 50 {
		t.Errorf("points = %d, want 50", res.Points)
	}
	c := g.Score.Counters
	if c.Score != 50 || c.Combo != 1 || c.MaxCombo != 1 || c.CircleCount != 1 {
		t.Errorf("counters = %+v", c)
	}
	if target.State != entity.Dead {
		t.Errorf("target state = %v, want Dead", target.State)
	}
	if len(g.Bubbles) != 1 || g.Bubbles[0].Value != 50 {
		t.Errorf("bubbles = %+v", g.Bubbles)
	}
}

func TestUnclickedCircleRegistersMiss(t *testing.T) {
	g := newTestGame(t)
	g.SpawnTarget(entity.KindCircle)

	for i := 0; i < 200 && len(g.Targets) > 0; i++ {
		g.BeginFrame()
		g.UpdateTargets(0.05, true)
	}
	if len(g.Targets) != 0 {
		t.Fatal("circle never expired")
	}
	c := g.Score.Counters
	if c.Missed != 1 || c.Combo != 0 || c.Score != -50 {
		t.Errorf("counters = %+v", c)
	}
	if len(g.Bubbles) != 1 {
		t.Fatalf("got %d bubbles, want 1", len(g.Bubbles))
	}
	if got := g.Bubbles[0].Label(); got != "-50" {
		t.Errorf("bubble label = %q, want -50", got)
	}
}

func TestDecorativeExpiryDoesNotScore(t *testing.T) {
	g := newTestGame(t)
	g.SpawnTarget(entity.KindCircle)

	for i := 0; i < 200 && len(g.Targets) > 0; i++ {
		g.UpdateTargets(0.05, false)
	}
	if g.Score.Missed != 0 || g.Score.Score != 0 || len(g.Bubbles) != 0 {
		t.Errorf("decorative expiry changed counters: %+v", g.Score.Counters)
	}
}

func TestResolveClickPicksTopmost(t *testing.T) {
	g := newTestGame(t)
	bottom := entity.NewTarget(g.Rng, 400, 300, 80, entity.KindCircle, entity.Params{Level: 1, ScreenMin: 600, Tuning: g.Tuning.Target})
	top := entity.NewTarget(g.Rng, 410, 300, 80, entity.KindPolygon, entity.Params{Level: 1, ScreenMin: 600, Tuning: g.Tuning.Target})
	g.Targets = append(g.Targets, bottom, top)

	res, ok := g.ResolveClick(405, 300)
	if !ok {
		t.Fatal("expected a hit")
	}
	if res.Outcome.Kind != entity.KindPolygon {
		t.Errorf("hit %v, want the polygon drawn on top", res.Outcome.Kind)
	}
	if bottom.State != entity.Alive {
		t.Error("the lower target must stay alive")
	}
	if g.Score.Fails != 1 {
		t.Errorf("fails = %d, want 1", g.Score.Fails)
	}
}

func TestClickOnEmptySpaceIsIgnored(t *testing.T) {
	g := newTestGame(t)
	if _, ok := g.ResolveClick(-10, -10); ok {
		t.Fatal("hit with no targets")
	}
	if g.Score.Score != 0 || len(g.Bubbles) != 0 {
		t.Error("empty click changed state")
	}
}

func TestPopAtDoesNotScore(t *testing.T) {
	g := newTestGame(t)
	target := g.SpawnTarget(entity.KindCircle)
	if !g.PopAt(target.Pos.X, target.Pos.Y) {
		t.Fatal("pop missed")
	}
	if g.Score.Score != 0 || g.Score.CircleCount != 0 || len(g.Bubbles) != 0 {
		t.Errorf("pop scored: %+v", g.Score.Counters)
	}
}

func TestQueueResizeAppliesAtFrameStart(t *testing.T) {
	g := newTestGame(t)
	if err := g.QueueResize(0, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if err := g.QueueResize(640, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if err := g.QueueResize(640, 480); err != nil {
		t.Fatal(err)
	}
	if g.Bounds.Width != 800 {
		t.Error("resize applied before the frame boundary")
	}
	g.BeginFrame()
	if g.Bounds != (component.Bounds{Width: 640, Height: 480}) {
		t.Errorf("bounds = %+v", g.Bounds)
	}
	if g.Frame != 1 {
		t.Errorf("frame = %d, want 1", g.Frame)
	}
}

func TestDrainClicks(t *testing.T) {
	g := newTestGame(t)
	g.QueueClick(1, 2)
	g.QueueClick(3, 4)
	clicks := g.DrainClicks()
	if len(clicks) != 2 || clicks[1] != (component.Position{X: 3, Y: 4}) {
		t.Fatalf("clicks = %+v", clicks)
	}
	if len(g.DrainClicks()) != 0 {
		t.Error("queue not cleared")
	}
}

func TestSpawnDueRespectsIntervalAndCap(t *testing.T) {
	g := newTestGame(t)
	if g.SpawnDue(1.0, 2000) {
		t.Fatal("spawn due after 1000ms of 2000ms")
	}
	if !g.SpawnDue(1.1, 2000) {
		t.Fatal("spawn not due after 2100ms")
	}
	if g.SinceSpawn != 0 {
		t.Errorf("timer not reset: %f", g.SinceSpawn)
	}
	for i := 0; i < 7; i++ {
		g.SpawnTarget(entity.KindCircle)
	}
	if g.SpawnDue(5, 2000) {
		t.Error("spawn due with seven live targets")
	}
}

func TestEndSessionPersistsRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	g := NewGame(Options{Seed: 2, Tuning: defs.DefaultTuning(), Store: store})

	var ended int
	g.EventDispatcher.Subscribe(event.SessionEnded, event.ListenerFunc(func(event.Event) { ended++ }))

	g.Score.Score = 120
	g.SpawnTarget(entity.KindCircle)
	sum := g.EndSession()

	if !sum.NewRecord || sum.HighScore != 120 || sum.Score != 120 {
		t.Errorf("summary = %+v", sum)
	}
	if got := storage.LoadHighScore(store); got != 120 {
		t.Errorf("stored high score = %d, want 120", got)
	}
	if len(g.Targets) != 0 || g.Score.Score != 0 {
		t.Error("session not cleared")
	}
	if ended != 1 {
		t.Errorf("SessionEnded dispatched %d times", ended)
	}
	if g.LastSummary != sum {
		t.Error("summary not kept for the end screen")
	}

	// рекорд подхватывается новой игрой
	again := NewGame(Options{Seed: 3, Tuning: defs.DefaultTuning(), Store: store})
	if again.Score.HighScore != 120 {
		t.Errorf("high score on restart = %d", again.Score.HighScore)
	}
}

func TestToggleMuteDispatches(t *testing.T) {
	g := newTestGame(t)
	var got []bool
	g.EventDispatcher.Subscribe(event.MuteToggle, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(bool))
	}))
	g.ToggleMute()
	g.ToggleMute()
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("mute events = %v", got)
	}
}

func TestFrameClockClampsDelta(t *testing.T) {
	now := time.Unix(100, 0)
	c := newFrameClock(func() time.Time { return now })

	now = now.Add(16 * time.Millisecond)
	if d := c.Tick(); d < 0.0159 || d > 0.0161 {
		t.Errorf("delta = %f, want 0.016", d)
	}
	now = now.Add(2 * time.Second)
	if d := c.Tick(); d != 0.06 {
		t.Errorf("delta after stall = %f, want 0.06", d)
	}
	now = now.Add(-time.Second)
	if d := c.Tick(); d != 0 {
		t.Errorf("delta for a clock step back = %f, want 0", d)
	}
}
