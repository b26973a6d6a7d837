package status

import "strings"

// Metric keys written by systems and read by the status bar
const (
	KeyFrames         = "engine.frames"
	KeyPhysicsSteps   = "physics.steps"
	KeyActiveContacts = "physics.contacts"
	KeyCuesRequested  = "audio.cues_requested"
	KeyCuesPlayed     = "audio.cues_played"
	KeyWins           = "game.wins"
	KeyFrameDelta     = "engine.delta_ms"
)

// Short status bar labels; unlisted keys fall back to their last segment
var labels = map[string]string{
	KeyCuesRequested: "req",
	KeyCuesPlayed:    "cues",
	KeyFrameDelta:    "Δms",
}

// Registry is the central metrics facade
// Systems cache pointers during construction; Update writes directly to them
type Registry struct {
	Counters *MetricMap[Counter]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[Counter](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// Label returns the display name for a metric key
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
