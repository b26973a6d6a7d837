package renderers

import (
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/render"
)

// RegisterAll adds the game renderers to the orchestrator in draw order
func RegisterAll(o *render.RenderOrchestrator, world *engine.World, showContacts bool) {
	o.Register(NewArenaRenderer(), render.PriorityArena)
	o.Register(NewGoalRenderer(world), render.PriorityGoal)
	o.Register(NewPieceRenderer(world), render.PriorityPieces)
	o.Register(NewPlayerRenderer(world), render.PriorityPlayers)
	o.Register(NewContactRenderer(world, showContacts), render.PriorityDebug)
	o.Register(NewStatusBarRenderer(world), render.PriorityUI)
	o.Register(NewBannerRenderer(world), render.PriorityOverlay)
}
