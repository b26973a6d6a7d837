package system

import (
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/event"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/status"
)

// WinConditionSystem watches the goal sensor and declares the first player found inside it
// Players are checked in ascending id so simultaneous arrivals resolve to the lowest id
type WinConditionSystem struct {
	engine.SystemBase

	statWins *status.Counter
}

// NewWinConditionSystem creates the win condition system
func NewWinConditionSystem(world *engine.World) engine.System {
	return &WinConditionSystem{
		SystemBase: engine.NewSystemBase(world),
		statWins:   world.Resource.Status.Counters.Get(status.KeyWins),
	}
}

// Priority returns the system's priority
func (s *WinConditionSystem) Priority() int {
	return parameter.PriorityWinCondition
}

// Update panics unless exactly one goal exists; emits EventPlayerWon once per round
func (s *WinConditionSystem) Update() {
	goals := s.Component.Goal.GetAllEntities()
	if len(goals) != 1 {
		panic(fmt.Sprintf("win condition: want exactly one goal, found %d", len(goals)))
	}
	goal := goals[0]

	state := s.Resource.Game.State
	if state.GetPhase() != engine.PhasePlaying {
		return
	}

	phys := s.Resource.Physics.World
	for _, e := range s.playersByID() {
		hit, ok := phys.IntersectionPair(e, goal)
		if !ok || !hit {
			continue
		}

		p, _ := s.Component.Player.GetComponent(e)
		if !state.DeclareWinner(p.ID, e, s.Resource.Time.GameTime) {
			return
		}
		s.statWins.Add(1)
		log.Printf("win: player %d reached goal at frame %d", p.ID, s.Resource.Time.FrameNumber)
		s.World.PushEvent(event.EventPlayerWon, &event.PlayerWonPayload{PlayerID: p.ID, Entity: e})
		return
	}
}

func (s *WinConditionSystem) playersByID() []core.Entity {
	players := s.Component.Player.GetAllEntities()
	slices.SortFunc(players, func(a, b core.Entity) int {
		pa, _ := s.Component.Player.GetComponent(a)
		pb, _ := s.Component.Player.GetComponent(b)
		return pa.ID - pb.ID
	})
	return players
}
