package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/rolling/component"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
)

func addPlayer(w *engine.World, id int) core.Entity {
	e := w.CreateEntity()
	w.Components.Player.SetComponent(e, component.PlayerComponent{ID: id})
	return e
}

func addGoal(w *engine.World) core.Entity {
	e := w.CreateEntity()
	w.Components.Goal.SetComponent(e, component.GoalComponent{})
	return e
}

func wonEvents(w *engine.World) []*event.PlayerWonPayload {
	var out []*event.PlayerWonPayload
	for _, ev := range w.Resource.Event.Queue.Consume() {
		if ev.Type == event.EventPlayerWon {
			out = append(out, ev.Payload.(*event.PlayerWonPayload))
		}
	}
	return out
}

func TestWinConditionRequiresExactlyOneGoal(t *testing.T) {
	for _, goals := range []int{0, 2} {
		w, _ := newTestWorld(newFakePhysics())
		addPlayer(w, 0)
		for i := 0; i < goals; i++ {
			addGoal(w)
		}
		s := NewWinConditionSystem(w)

		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic with %d goals", goals)
				}
			}()
			s.Update()
		}()
	}
}

func TestWinConditionLowestIDWins(t *testing.T) {
	phys := newFakePhysics()
	w, _ := newTestWorld(phys)
	red := addPlayer(w, 1) // created first, higher id
	blue := addPlayer(w, 0)
	addGoal(w)
	phys.overlaps[red] = true
	phys.overlaps[blue] = true

	s := NewWinConditionSystem(w)
	setFrame(w, 1, 16*time.Millisecond)
	s.Update()

	won := wonEvents(w)
	if len(won) != 1 {
		t.Fatalf("Expected exactly one win event, got %d", len(won))
	}
	if won[0].PlayerID != 0 || won[0].Entity != blue {
		t.Errorf("Expected player 0 to win ties, got %+v", won[0])
	}
	if id, _, ok := w.Resource.Game.State.Winner(); !ok || id != 0 {
		t.Errorf("Game state winner = %d ok=%v", id, ok)
	}
}

func TestWinConditionEmitsOncePerRound(t *testing.T) {
	phys := newFakePhysics()
	w, _ := newTestWorld(phys)
	e := addPlayer(w, 1)
	addGoal(w)
	phys.overlaps[e] = true

	s := NewWinConditionSystem(w)
	total := 0
	for frame := int64(1); frame <= 10; frame++ {
		setFrame(w, frame, 16*time.Millisecond)
		s.Update()
		total += len(wonEvents(w))
	}
	if total != 1 {
		t.Errorf("Expected 1 win event across 10 frames, got %d", total)
	}

	w.Resource.Game.State.Restart(time.Unix(1, 0))
	setFrame(w, 11, 16*time.Millisecond)
	s.Update()
	if n := len(wonEvents(w)); n != 1 {
		t.Errorf("Expected a new win after restart, got %d", n)
	}
}

func TestWinConditionIgnoresUnavailableQueries(t *testing.T) {
	phys := newFakePhysics()
	w, _ := newTestWorld(phys)
	e := addPlayer(w, 0)
	addGoal(w)
	phys.overlaps[e] = true
	phys.available = false

	s := NewWinConditionSystem(w)
	s.Update()

	if n := len(wonEvents(w)); n != 0 {
		t.Errorf("Unavailable intersection must not count, got %d wins", n)
	}
	if w.Resource.Game.State.GetPhase() != engine.PhasePlaying {
		t.Error("Phase should stay Playing")
	}
}

func TestWinConditionNoOverlapNoWin(t *testing.T) {
	w, _ := newTestWorld(newFakePhysics())
	addPlayer(w, 0)
	addPlayer(w, 1)
	addGoal(w)

	NewWinConditionSystem(w).Update()

	if n := len(wonEvents(w)); n != 0 {
		t.Errorf("Expected no win, got %d", n)
	}
}
