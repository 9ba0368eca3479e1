package core

// Button identifies a digital input.
type Button uint8

const (
	ButtonConfirm Button = iota // joystick press: select, fire, rotate
	ButtonA                     // secondary action
	ButtonB                     // tertiary action
	ButtonExit                  // leave the running game
	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonConfirm:
		return "Confirm"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// DefaultDeadZone is the axis magnitude below which input reads as centred.
const DefaultDeadZone = 32

// RawInput is what a controller reports for one sample: two analog axes and
// the held state of every button. Edges are computed by InputState.
type RawInput struct {
	X, Y    int8
	Buttons [ButtonCount]bool
}

// Press returns a copy of r with button b held.
func (r RawInput) Press(b Button) RawInput {
	if b < ButtonCount {
		r.Buttons[b] = true
	}
	return r
}

// ButtonState is the per-tick state of one button.
type ButtonState struct {
	Held    bool // physically down this tick
	Pressed bool // went down this tick
}

// InputState is the edge-detected input for one tick. Only one tick of
// history is kept.
type InputState struct {
	X, Y int8

	deadZone int
	buttons  [ButtonCount]ButtonState
	dir      Dot
	prevDir  Dot
}

// NewInputState creates an input state with the given axis dead zone.
func NewInputState(deadZone int) InputState {
	return InputState{deadZone: deadZone}
}

// SetDeadZone changes the axis dead zone.
func (s *InputState) SetDeadZone(deadZone int) {
	s.deadZone = deadZone
}

// Sample folds one raw reading into the state.
func (s *InputState) Sample(raw RawInput) {
	s.X = s.filter(raw.X)
	s.Y = s.filter(raw.Y)

	for i := range s.buttons {
		held := raw.Buttons[i]
		s.buttons[i].Pressed = held && !s.buttons[i].Held
		s.buttons[i].Held = held
	}

	s.prevDir = s.dir
	s.dir = s.digital()
}

// Reset forgets all history, as if every button had been released.
func (s *InputState) Reset() {
	*s = InputState{deadZone: s.deadZone}
}

func (s *InputState) filter(v int8) int8 {
	if Abs(int(v)) < s.deadZone {
		return 0
	}
	return v
}

func (s *InputState) digital() Dot {
	switch {
	case s.Y < 0:
		return DirUp
	case s.Y > 0:
		return DirDown
	case s.X < 0:
		return DirLeft
	case s.X > 0:
		return DirRight
	}
	return DirNone
}

// Held reports whether b is down this tick.
func (s *InputState) Held(b Button) bool {
	return b < ButtonCount && s.buttons[b].Held
}

// Pressed reports whether b went down this tick.
func (s *InputState) Pressed(b Button) bool {
	return b < ButtonCount && s.buttons[b].Pressed
}

// Button returns the full state of b.
func (s *InputState) Button(b Button) ButtonState {
	if b >= ButtonCount {
		return ButtonState{}
	}
	return s.buttons[b]
}

// Direction returns the digital direction of the stick. Vertical input wins
// when both axes are deflected.
func (s *InputState) Direction() Dot {
	return s.dir
}

// DirectionPressed reports whether the digital direction changed to a
// non-neutral value this tick.
func (s *InputState) DirectionPressed() bool {
	return !s.dir.IsZero() && s.dir != s.prevDir
}

// AxisX returns the sign of the horizontal axis.
func (s *InputState) AxisX() int {
	return Sign(int(s.X))
}

// AxisY returns the sign of the vertical axis.
func (s *InputState) AxisY() int {
	return Sign(int(s.Y))
}
