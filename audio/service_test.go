package audio

import "testing"

func TestAudioServiceDegradesWithoutStart(t *testing.T) {
	s := NewService(t.TempDir())
	if s.Name() != "audio" || len(s.Dependencies()) != 0 {
		t.Errorf("Unexpected identity %q %v", s.Name(), s.Dependencies())
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	published := 0
	s.Contribute(func(any) { published++ })
	if published != 0 {
		t.Error("Audio resource must not be published before the device is open")
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Second Stop failed: %v", err)
	}
}

func TestAudioServiceStartNeverFails(t *testing.T) {
	s := NewService(t.TempDir())
	s.Init()
	defer s.Stop()

	if err := s.Start(); err != nil {
		t.Fatalf("Start should degrade instead of failing: %v", err)
	}

	published := 0
	s.Contribute(func(any) { published++ })
	if s.IsDisabled() && published != 0 {
		t.Error("Disabled service must not publish")
	}
	if !s.IsDisabled() && published != 1 {
		t.Errorf("Running service should publish once, got %d", published)
	}
}
