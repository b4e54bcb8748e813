package state

import (
	"testing"
	"time"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestClock_PauseFreezesElapsed(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)

	fc.advance(30 * time.Second)
	c.Pause()
	fc.advance(5 * time.Second)
	if got := c.Elapsed(); got != 30*time.Second {
		t.Errorf("Elapsed while paused = %v, want 30s", got)
	}
	c.Resume()
	if got := c.Elapsed(); got != 30*time.Second {
		t.Errorf("Elapsed right after resume = %v, want 30s", got)
	}
	fc.advance(2 * time.Second)
	if got := c.Elapsed(); got != 32*time.Second {
		t.Errorf("Elapsed 2s after resume = %v, want 32s", got)
	}
}

func TestClock_StopFreezes(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)

	fc.advance(12 * time.Second)
	c.Stop()
	fc.advance(time.Minute)
	c.Pause()
	c.Resume()
	if got := c.Elapsed(); got != 12*time.Second {
		t.Errorf("Elapsed after Stop = %v, want 12s", got)
	}
	if c.Paused() {
		t.Error("a stopped clock accepted Pause")
	}

	c.Reset()
	fc.advance(time.Second)
	if got := c.Elapsed(); got != time.Second || c.Stopped() {
		t.Errorf("after Reset: Elapsed = %v, Stopped = %v", got, c.Stopped())
	}
}

func TestClock_RepeatedPauseResume(t *testing.T) {
	fc := newFakeClock()
	c := NewClock(fc.now)

	for i := 0; i < 3; i++ {
		fc.advance(10 * time.Second)
		c.Pause()
		c.Pause()
		fc.advance(time.Minute)
		c.Resume()
		c.Resume()
	}
	if got := c.Elapsed(); got != 30*time.Second {
		t.Errorf("Elapsed = %v, want 30s", got)
	}

	c.Reset()
	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed after Reset = %v, want 0", got)
	}
}

func TestGameSession_Budgets(t *testing.T) {
	fc := newFakeClock()
	s := NewGameSession(rules.Hard, 1, fc.now)
	s.Config = s.ConfigFor(1)

	if left, ok := s.MovesRemaining(); !ok || left != 40 {
		t.Errorf("MovesRemaining = %d, %v; want 40, true", left, ok)
	}
	s.Player.MovesUsed = 45
	if left, _ := s.MovesRemaining(); left != 0 {
		t.Errorf("MovesRemaining past budget = %d, want 0", left)
	}

	fc.advance(90 * time.Second)
	if left, ok := s.TimeRemaining(); !ok || left != 30*time.Second {
		t.Errorf("TimeRemaining = %v, %v; want 30s, true", left, ok)
	}

	easy := NewGameSession(rules.Easy, 1, fc.now)
	if _, ok := easy.MovesRemaining(); ok {
		t.Error("easy MovesRemaining reported a limit")
	}
	if _, ok := easy.TimeRemaining(); ok {
		t.Error("easy TimeRemaining reported a limit")
	}
}

func TestGameSession_IsVisible(t *testing.T) {
	s := NewGameSession(rules.Normal, 1, nil)
	s.Grid = world.NewGrid(6, 6)
	s.Player.Position = world.Pos(2, 2)
	s.RevealAround()

	if !s.IsVisible(world.Pos(1, 1)) {
		t.Error("diagonal neighbour not visible after reveal")
	}
	if s.IsVisible(world.Pos(4, 4)) {
		t.Error("distant cell visible")
	}

	s.Clock.Pause()
	if s.IsVisible(world.Pos(1, 1)) {
		t.Error("revealed neighbour visible while paused")
	}
	if !s.IsVisible(world.Pos(2, 2)) {
		t.Error("player cell hidden while paused")
	}
	if s.Revealed.Size() != 9 {
		t.Errorf("pause changed the revealed set: size %d, want 9", s.Revealed.Size())
	}
	s.Clock.Resume()

	s.Config.Visibility.Mode = world.RevealTransient
	s.Player.Position = world.Pos(5, 5)
	s.RevealAround()
	if s.IsVisible(world.Pos(1, 1)) {
		t.Error("transient mode kept an old cell visible")
	}
	if !s.IsVisible(world.Pos(4, 4)) {
		t.Error("transient mode hides a neighbour")
	}
}

func TestGameSession_SetGridSize(t *testing.T) {
	s := NewGameSession(rules.Normal, 1, nil)
	s.SetGridSize(rules.CompactGridSize, rules.CompactGridSize)
	cfg := s.ConfigFor(4)
	if cfg.Rows != 5 || cfg.Cols != 5 {
		t.Errorf("grid = %dx%d, want 5x5", cfg.Rows, cfg.Cols)
	}
	if cfg.SpecialCount() > 24 {
		t.Errorf("%d items do not fit a 5x5 board", cfg.SpecialCount())
	}

	s.SetDifficulty(rules.Hard)
	if s.Base.Rows != 5 {
		t.Errorf("difficulty change dropped the grid override: rows = %d", s.Base.Rows)
	}
	s.SetGridSize(0, 0)
	if s.Base.Rows != 7 {
		t.Errorf("clearing the override: rows = %d, want 7", s.Base.Rows)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := NewGameSession(rules.Normal, 1, nil)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.AddMessage(m)
	}
	if len(s.Messages) != 5 || s.Messages[0] != "c" || s.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", s.Messages)
	}
}
