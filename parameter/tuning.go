package parameter

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed tuning.toml
var defaultTuningTOML string

// CueMode selects how the collision cue reacts to sustained contact
type CueMode string

const (
	// CueEveryFrame plays once per frame while any contact is active
	CueEveryFrame CueMode = "frame"
	// CueOnBegin plays once when a contact pair starts touching
	CueOnBegin CueMode = "begin"
)

// Point is a TOML-friendly 2D coordinate in world units
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Pose is a static placement; rotation is stored in quarter turns to keep the table exact
type Pose struct {
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	QuarterTurns float64 `toml:"quarter_turns"`
}

// Rotation returns the pose rotation in radians
func (p Pose) Rotation() float64 {
	return p.QuarterTurns * math.Pi / 2
}

type PhysicsTuning struct {
	PixelsPerMeter float64 `toml:"pixels_per_meter"`
	MaxStepSeconds float64 `toml:"max_step_seconds"`
	Iterations     uint    `toml:"iterations"`
	Gravity        Point   `toml:"gravity"`
}

type PlayerTuning struct {
	MoveForce      float64 `toml:"move_force"`
	Radius         float64 `toml:"radius"`
	Density        float64 `toml:"density"`
	LinearDamping  float64 `toml:"linear_damping"`
	AngularDamping float64 `toml:"angular_damping"`
	Restitution    float64 `toml:"restitution"`
	Friction       float64 `toml:"friction"`
	Spawns         []Point `toml:"spawns"`
}

type PieceTuning struct {
	CornerRadius float64 `toml:"corner_radius"`
	Restitution  float64 `toml:"restitution"`
	Friction     float64 `toml:"friction"`
	Vertices     []Point `toml:"vertices"`
	Poses        []Pose  `toml:"poses"`
}

type GoalTuning struct {
	Radius   float64 `toml:"radius"`
	Position Point   `toml:"position"`
}

type InputTuning struct {
	GamepadDeadZone float64 `toml:"gamepad_dead_zone"`
	KeyHoldMs       int     `toml:"key_hold_ms"`
}

// KeyHold returns how long a key counts as held after its last press event
func (t InputTuning) KeyHold() time.Duration {
	return time.Duration(t.KeyHoldMs) * time.Millisecond
}

type AudioTuning struct {
	CueMode    CueMode `toml:"cue_mode"`
	SampleRate int     `toml:"sample_rate"`
	BufferMs   int     `toml:"buffer_ms"`
	ImpactMs   int     `toml:"impact_ms"`
	Volume     float64 `toml:"volume"`
}

type ArenaTuning struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Tuning is the full set of gameplay tunables
type Tuning struct {
	Physics PhysicsTuning `toml:"physics"`
	Player  PlayerTuning  `toml:"player"`
	Piece   PieceTuning   `toml:"piece"`
	Goal    GoalTuning    `toml:"goal"`
	Input   InputTuning   `toml:"input"`
	Audio   AudioTuning   `toml:"audio"`
	Arena   ArenaTuning   `toml:"arena"`
}

var (
	defaultOnce   sync.Once
	defaultTuning Tuning
)

// DefaultTuning returns the embedded reference tuning
// Panics if the embedded table is malformed, which is a build defect
func DefaultTuning() Tuning {
	defaultOnce.Do(func() {
		t, err := DecodeTuning(strings.NewReader(defaultTuningTOML))
		if err != nil {
			panic(fmt.Errorf("embedded tuning: %w", err))
		}
		defaultTuning = t
	})
	// Slices are copied so callers cannot mutate the shared default
	t := defaultTuning
	t.Player.Spawns = append([]Point(nil), defaultTuning.Player.Spawns...)
	t.Piece.Vertices = append([]Point(nil), defaultTuning.Piece.Vertices...)
	t.Piece.Poses = append([]Pose(nil), defaultTuning.Piece.Poses...)
	return t
}

// DecodeTuning parses and validates a tuning table
func DecodeTuning(r io.Reader) (Tuning, error) {
	var t Tuning
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Tuning{}, fmt.Errorf("unknown tuning key %q", undecoded[0].String())
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks scene cardinality and physical sanity
func (t Tuning) Validate() error {
	switch {
	case t.Physics.PixelsPerMeter <= 0:
		return fmt.Errorf("physics.pixels_per_meter must be positive")
	case t.Physics.MaxStepSeconds <= 0:
		return fmt.Errorf("physics.max_step_seconds must be positive")
	case t.Physics.Iterations == 0:
		return fmt.Errorf("physics.iterations must be non-zero")
	case t.Player.Radius <= 0 || t.Player.Density <= 0:
		return fmt.Errorf("player.radius and player.density must be positive")
	case len(t.Player.Spawns) != PlayerCount:
		return fmt.Errorf("player.spawns: want %d, got %d", PlayerCount, len(t.Player.Spawns))
	case len(t.Piece.Vertices) != 3:
		return fmt.Errorf("piece.vertices: want 3, got %d", len(t.Piece.Vertices))
	case len(t.Piece.Poses) != PieceCount:
		return fmt.Errorf("piece.poses: want %d, got %d", PieceCount, len(t.Piece.Poses))
	case t.Goal.Radius <= 0:
		return fmt.Errorf("goal.radius must be positive")
	case t.Input.KeyHoldMs <= 0:
		return fmt.Errorf("input.key_hold_ms must be positive")
	case t.Audio.CueMode != CueEveryFrame && t.Audio.CueMode != CueOnBegin:
		return fmt.Errorf("audio.cue_mode: unknown mode %q", t.Audio.CueMode)
	case t.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive")
	}
	return nil
}
