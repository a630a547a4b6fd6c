package sequence

import "errors"

var ErrEmptyProgram = errors.New("program has no clips")

// Ease names how a segment between two keyframes is shaped.
type Ease string

const (
	Linear Ease = "linear"
	Smooth Ease = "smooth"
	Cubic  Ease = "cubic"
)

// Keyframe is a value at T seconds into a clip. Ease shapes the segment
// that starts here.
type Keyframe struct {
	T    float64 `yaml:"t"`
	V    float64 `yaml:"v"`
	Ease Ease    `yaml:"ease,omitempty"`
}

// Envelope is a list of keyframes sorted by T.
type Envelope struct {
	Keys []Keyframe `yaml:"keys,omitempty"`
}

// Clip plays one scene for DurationS seconds. A non-empty Intensity
// envelope drives the engine intensity while the clip runs.
type Clip struct {
	Name      string   `yaml:"name"`
	Scene     string   `yaml:"scene"`
	DurationS float64  `yaml:"duration_s"`
	Intensity Envelope `yaml:"intensity,omitempty"`
}

// Program is an ordered show of clips.
type Program struct {
	Name  string `yaml:"name"`
	Loop  bool   `yaml:"loop,omitempty"`
	Clips []Clip `yaml:"clips"`
}

type PlayerState string

const (
	Idle    PlayerState = "idle"
	Running PlayerState = "running"
	Paused  PlayerState = "paused"
)

// Hooks connect the player to whatever renders scenes.
type Hooks struct {
	Select       func(scene string) error
	SetIntensity func(v float64)
}

// Player walks a Program timeline and drives Hooks.
type Player struct {
	State PlayerState

	prog  Program
	nowS  float64
	idx   int
	hooks Hooks
	err   error
}
