package physics

import (
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/service"
)

// Service wraps the physics World for the service hub
type Service struct {
	world *World
}

// NewService creates an uninitialized physics service
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "physics"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: parameter.Tuning, the embedded default is used when absent
func (s *Service) Init(args ...any) error {
	tuning := parameter.DefaultTuning()
	if len(args) > 0 {
		if t, ok := args[0].(parameter.Tuning); ok {
			tuning = t
		}
	}
	s.world = NewWorld(tuning.Physics)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	return nil
}

// World returns the physics world, nil before Init
func (s *Service) World() *World {
	return s.world
}

// Contribute implements service.ResourceContributor
func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.world == nil {
		return
	}
	publish(&engine.PhysicsResource{World: s.world})
}
