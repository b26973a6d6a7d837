package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/service"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	manager  *SoundManager
	clipDir  string
	disabled atomic.Bool
}

// NewService creates a new audio service loading clips from clipDir
func NewService(clipDir string) *AudioService {
	return &AudioService{clipDir: clipDir}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: parameter.Tuning, the embedded default is used when absent
func (s *AudioService) Init(args ...any) error {
	tuning := parameter.DefaultTuning()
	if len(args) > 0 {
		if t, ok := args[0].(parameter.Tuning); ok {
			tuning = t
		}
	}
	s.manager = NewSoundManager(tuning.Audio)
	return nil
}

// Start implements Service
// Opens the output device; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	log.Printf("audio: %d clips loaded from %s", s.manager.LoadClips(s.clipDir), s.clipDir)
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled reports whether audio degraded to silence
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Contribute implements service.ResourceContributor
// Publishes AudioResource only when the output device is running
func (s *AudioService) Contribute(publish service.ResourcePublisher) {
	if s.disabled.Load() || s.manager == nil || !s.manager.IsRunning() {
		return
	}
	publish(&engine.AudioResource{Player: s.manager})
}
