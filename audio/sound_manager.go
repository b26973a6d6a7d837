package audio

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/parameter"
)

// SoundManager plays one-shot cues through a single beep mixer
// Safe to use uninitialized: every call degrades to a silent no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	bufferSize  int
	impactLen   time.Duration
	volume      float64
	clips       map[core.SoundType]*beep.Buffer
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a new sound manager from audio tuning
func NewSoundManager(cfg parameter.AudioTuning) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	return &SoundManager{
		mixer:      &beep.Mixer{},
		rate:       rate,
		bufferSize: rate.N(time.Duration(cfg.BufferMs) * time.Millisecond),
		impactLen:  time.Duration(cfg.ImpactMs) * time.Millisecond,
		volume:     cfg.Volume,
		clips:      make(map[core.SoundType]*beep.Buffer),
	}
}

// Initialize opens the output device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.bufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// LoadClips replaces synthesized cues with recorded clips found under dir
// Missing or undecodable files keep the synthesized cue; returns the number loaded
func (sm *SoundManager) LoadClips(dir string) int {
	files := map[core.SoundType]string{
		core.SoundImpact: parameter.ClipImpact,
	}

	loaded := 0
	for st, name := range files {
		buf, err := LoadClip(filepath.Join(dir, name), sm.rate)
		if err != nil {
			log.Printf("audio: %s clip unavailable, using synthesized cue: %v", st, err)
			continue
		}
		sm.mu.Lock()
		sm.clips[st] = buf
		sm.mu.Unlock()
		loaded++
	}
	return loaded
}

// streamFor builds a fresh streamer for one playback
func (sm *SoundManager) streamFor(st core.SoundType) beep.Streamer {
	if buf, ok := sm.clips[st]; ok {
		return newVolume(buf.Streamer(0, buf.Len()), sm.volume)
	}
	return synthesize(st, sm.rate, sm.impactLen, sm.volume)
}

// Play queues a cue on the mixer; returns false when silent, muted or the type is unknown
func (sm *SoundManager) Play(st core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	s := sm.streamFor(st)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// ToggleMute flips mute and returns the new state
// Muting clears cues already queued on the mixer
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)

	if muted {
		sm.mu.Lock()
		if sm.initialized {
			speaker.Lock()
			sm.mixer.Clear()
			speaker.Unlock()
		}
		sm.mu.Unlock()
	}
	return muted
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the output device is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many cues were handed to the mixer
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Cleanup stops all sounds and closes the output device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
