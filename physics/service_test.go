package physics

import (
	"testing"

	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/parameter"
)

func TestServiceContributesWorld(t *testing.T) {
	s := NewService()

	var published []any
	s.Contribute(func(r any) { published = append(published, r) })
	if len(published) != 0 {
		t.Fatal("Nothing should be published before Init")
	}

	tuning := parameter.DefaultTuning()
	tuning.Physics.Iterations = 4
	if err := s.Init(tuning); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if s.World() == nil || s.World().tuning.Iterations != 4 {
		t.Error("Init should build the world from the given tuning")
	}

	s.Contribute(func(r any) { published = append(published, r) })
	if len(published) != 1 {
		t.Fatalf("Expected one resource, got %d", len(published))
	}
	res, ok := published[0].(*engine.PhysicsResource)
	if !ok || res.World != s.World() {
		t.Errorf("Published %T, want the service's world", published[0])
	}
}

func TestServiceInitWithoutArgs(t *testing.T) {
	s := NewService()
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if s.World() == nil {
		t.Error("Init without args should use the default tuning")
	}
}
