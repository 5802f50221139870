package system

import (
	"testing"

	"go-target-rush/internal/defs"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/event"
)

func newTracker() *ScoreTracker {
	return NewScoreTracker(defs.DefaultTuning(), 0, nil)
}

func circleHit(ratio float64) entity.Outcome {
	return entity.Outcome{Kind: entity.KindCircle, Ratio: ratio}
}

func TestCleanCircleHit(t *testing.T) {
	s := newTracker()
	res := s.ResolveHit(circleHit(1.0))

	if res.Points != 50 || s.Score != 50 {
		t.Fatalf("points=%d score=%d, want 50", res.Points, s.Score)
	}
	if s.Combo != 1 || s.MaxCombo != 1 || s.CircleCount != 1 {
		t.Fatalf("combo=%d max=%d circles=%d", s.Combo, s.MaxCombo, s.CircleCount)
	}
}

func TestComboMultiplierUsesStreakBeforeHit(t *testing.T) {
	s := newTracker()
	s.Combo = 4
	s.MaxCombo = 4
	res := s.ResolveHit(circleHit(1.0))
	// 50 * (1 + 4*0.05) = 60
	if res.Points != 60 {
		t.Fatalf("points = %d, want 60", res.Points)
	}
	if s.Combo != 5 || s.MaxCombo != 5 {
		t.Fatalf("combo=%d max=%d", s.Combo, s.MaxCombo)
	}
}

func TestComboRule(t *testing.T) {
	cases := []struct {
		name      string
		ratio     float64
		wantCombo int
		wantMax   int
	}{
		{"low ratio resets", 0.5, 0, 7},
		{"exact threshold resets", 0.8, 0, 7},
		{"clean hit extends", 0.81, 8, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTracker()
			s.Combo = 7
			s.MaxCombo = 7
			s.ResolveHit(circleHit(c.ratio))
			if s.Combo != c.wantCombo || s.MaxCombo != c.wantMax {
				t.Fatalf("combo=%d max=%d, want %d/%d", s.Combo, s.MaxCombo, c.wantCombo, c.wantMax)
			}
		})
	}
}

func TestMaxComboKeepsBestStreak(t *testing.T) {
	s := newTracker()
	s.Combo = 2
	s.MaxCombo = 9
	s.ResolveHit(circleHit(1.0))
	if s.Combo != 3 || s.MaxCombo != 9 {
		t.Fatalf("combo=%d max=%d", s.Combo, s.MaxCombo)
	}
}

func TestLevelUpAfterTenTimesLevelHits(t *testing.T) {
	s := newTracker()
	for i := 0; i < 9; i++ {
		if s.ResolveHit(circleHit(0.5)).LevelUp {
			t.Fatalf("level up after %d hits", i+1)
		}
	}
	if !s.ResolveHit(circleHit(0.5)).LevelUp {
		t.Fatal("expected level up on the 10th hit")
	}
	if s.Level != 2 || s.CircleCount != 0 {
		t.Fatalf("level=%d circles=%d", s.Level, s.CircleCount)
	}
	if s.SpawnFrequency != 1800 {
		t.Fatalf("spawn frequency = %f, want 1800", s.SpawnFrequency)
	}
	if s.PolygonFrequency <= 0.04 {
		t.Fatalf("polygon frequency did not grow: %f", s.PolygonFrequency)
	}

	freq, poly := s.SpawnFrequency, s.PolygonFrequency
	for i := 0; i < 19; i++ {
		s.ResolveHit(circleHit(0.5))
	}
	if s.Level != 2 {
		t.Fatalf("level %d before 20 hits at level 2", s.Level)
	}
	s.ResolveHit(circleHit(0.5))
	if s.Level != 3 {
		t.Fatalf("level = %d, want 3", s.Level)
	}
	if !(s.SpawnFrequency < freq) || !(s.PolygonFrequency > poly) {
		t.Fatalf("difficulty did not ramp: %f→%f, %f→%f", freq, s.SpawnFrequency, poly, s.PolygonFrequency)
	}
}

func TestDifficultyFloorAndCap(t *testing.T) {
	s := newTracker()
	s.SpawnFrequency = 360
	s.PolygonFrequency = 0.195
	for i := 0; i < 10; i++ {
		s.ResolveHit(circleHit(0.5))
	}
	if s.SpawnFrequency != 350 {
		t.Fatalf("spawn frequency = %f, want floor 350", s.SpawnFrequency)
	}
	if s.PolygonFrequency != 0.2 {
		t.Fatalf("polygon frequency = %f, want cap 0.2", s.PolygonFrequency)
	}
}

func TestBonusHits(t *testing.T) {
	s := newTracker()
	s.Fails = 2
	s.Missed = 0
	s.Combo = 3

	res := s.ResolveHit(entity.Outcome{Kind: entity.KindBonusRed, Ratio: 1})
	// ceil(50 * (1.5 + 0.15)) = 83
	if res.Points != 83 {
		t.Fatalf("points = %d, want 83", res.Points)
	}
	if s.Fails != 1 || s.Combo != 3 {
		t.Fatalf("fails=%d combo=%d", s.Fails, s.Combo)
	}

	s.ResolveHit(entity.Outcome{Kind: entity.KindBonusGreen, Ratio: 1})
	if s.Missed != 0 {
		t.Fatalf("missed went negative: %d", s.Missed)
	}
	s.Fails = 0
	s.ResolveHit(entity.Outcome{Kind: entity.KindBonusRed, Ratio: 1})
	if s.Fails != 0 {
		t.Fatalf("fails went negative: %d", s.Fails)
	}
}

func TestPolygonHit(t *testing.T) {
	s := newTracker()
	s.Combo = 2
	s.Score = 500
	res := s.ResolveHit(entity.Outcome{Kind: entity.KindPolygon, Ratio: 1})
	// ceil(50 * (-3 + 0.1)) = -145
	if res.Points != -145 || s.Score != 355 {
		t.Fatalf("points=%d score=%d", res.Points, s.Score)
	}
	if s.Combo != 0 || s.Fails != 1 {
		t.Fatalf("combo=%d fails=%d", s.Combo, s.Fails)
	}
	if s.CircleCount != 0 {
		t.Fatal("polygon counted toward level progress")
	}
}

func TestRegisterMiss(t *testing.T) {
	s := newTracker()
	s.Combo = 5
	if got := s.RegisterMiss(); got != -50 {
		t.Fatalf("penalty = %d", got)
	}
	if s.Missed != 1 || s.Combo != 0 || s.Score != -50 {
		t.Fatalf("missed=%d combo=%d score=%d", s.Missed, s.Combo, s.Score)
	}
}

func TestIsGameOver(t *testing.T) {
	cases := []struct {
		fails, missed int
		want          bool
	}{
		{0, 0, false},
		{3, 10, false},
		{4, 0, true},
		{0, 11, true},
	}
	for _, c := range cases {
		s := newTracker()
		s.Fails, s.Missed = c.fails, c.missed
		if got := s.IsGameOver(); got != c.want {
			t.Errorf("fails=%d missed=%d: got %v", c.fails, c.missed, got)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := NewScoreTracker(defs.DefaultTuning(), 100, nil)
	s.Score = 420
	s.Fails = 2
	s.Missed = 4
	s.Combo = 3
	s.MaxCombo = 6
	s.Level = 4
	s.CircleCount = 7
	s.SpawnFrequency = 900
	s.PolygonFrequency = 0.1

	sum := s.Reset()
	if !sum.NewRecord || sum.Score != 420 || sum.HighScore != 420 || sum.MaxCombo != 6 || sum.Level != 4 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	once := s.Counters
	s.Reset()
	if s.Counters != once {
		t.Fatalf("second reset changed counters: %+v vs %+v", s.Counters, once)
	}
	want := Counters{HighScore: 420, Level: 1, SpawnFrequency: 2000, PolygonFrequency: 0.04}
	if once != want {
		t.Fatalf("reset counters = %+v, want %+v", once, want)
	}
}

func TestResetKeepsHigherRecord(t *testing.T) {
	s := NewScoreTracker(defs.DefaultTuning(), 1000, nil)
	s.Score = 10
	sum := s.Reset()
	if sum.NewRecord || s.HighScore != 1000 {
		t.Fatalf("summary %+v high %d", sum, s.HighScore)
	}
}

func TestTrackerDispatchesEvents(t *testing.T) {
	d := event.NewDispatcher()
	var types []event.EventType
	rec := event.ListenerFunc(func(e event.Event) { types = append(types, e.Type) })
	d.Subscribe(event.TargetHit, rec)
	d.Subscribe(event.LevelUp, rec)
	d.Subscribe(event.CircleMissed, rec)

	s := NewScoreTracker(defs.DefaultTuning(), 0, d)
	for i := 0; i < 10; i++ {
		s.ResolveHit(circleHit(1))
	}
	s.RegisterMiss()

	hits, levels, misses := 0, 0, 0
	for _, tp := range types {
		switch tp {
		case event.TargetHit:
			hits++
		case event.LevelUp:
			levels++
		case event.CircleMissed:
			misses++
		}
	}
	if hits != 10 || levels != 1 || misses != 1 {
		t.Fatalf("hits=%d levels=%d misses=%d", hits, levels, misses)
	}
}
