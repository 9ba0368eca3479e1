package core

import "testing"

func TestInputEdgeDetection(t *testing.T) {
	raw := []bool{false, true, true, false, true}
	expected := []bool{false, true, false, false, true}

	in := NewInputState(DefaultDeadZone)
	for i, held := range raw {
		var r RawInput
		r.Buttons[ButtonConfirm] = held
		in.Sample(r)

		if in.Pressed(ButtonConfirm) != expected[i] {
			t.Errorf("tick %d: Pressed = %v, expected %v", i, in.Pressed(ButtonConfirm), expected[i])
		}
		if in.Held(ButtonConfirm) != held {
			t.Errorf("tick %d: Held = %v, expected %v", i, in.Held(ButtonConfirm), held)
		}
	}
}

func TestInputButtonsIndependent(t *testing.T) {
	in := NewInputState(DefaultDeadZone)

	in.Sample(RawInput{}.Press(ButtonA))
	in.Sample(RawInput{}.Press(ButtonA).Press(ButtonB))

	if in.Pressed(ButtonA) {
		t.Error("A is still held, no new edge expected")
	}
	if !in.Pressed(ButtonB) {
		t.Error("B went down this tick")
	}
	if in.Pressed(ButtonCount) || in.Held(ButtonCount) {
		t.Error("out-of-range button must read as released")
	}
}

func TestInputDeadZone(t *testing.T) {
	tests := []struct {
		name  string
		raw   int8
		axis  int8
		digit int
	}{
		{"centred", 0, 0, 0},
		{"inside dead zone", 20, 0, 0},
		{"negative inside dead zone", -31, 0, 0},
		{"at threshold", 32, 32, 1},
		{"full left", -128, -128, -1},
		{"full right", 127, 127, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInputState(DefaultDeadZone)
			in.Sample(RawInput{X: tc.raw})
			if in.X != tc.axis {
				t.Errorf("X = %d, expected %d", in.X, tc.axis)
			}
			if in.AxisX() != tc.digit {
				t.Errorf("AxisX() = %d, expected %d", in.AxisX(), tc.digit)
			}
		})
	}
}

func TestInputDirection(t *testing.T) {
	in := NewInputState(DefaultDeadZone)

	in.Sample(RawInput{X: 100})
	if in.Direction() != DirRight || !in.DirectionPressed() {
		t.Errorf("Direction() = %v, pressed %v; expected right onset", in.Direction(), in.DirectionPressed())
	}

	in.Sample(RawInput{X: 100})
	if in.DirectionPressed() {
		t.Error("holding the same direction is not a new press")
	}

	in.Sample(RawInput{X: 100, Y: -100})
	if in.Direction() != DirUp || !in.DirectionPressed() {
		t.Error("vertical deflection should win and count as a new direction")
	}

	in.Sample(RawInput{})
	if in.Direction() != DirNone || in.DirectionPressed() {
		t.Error("releasing the stick is not a direction press")
	}
}

func TestInputReset(t *testing.T) {
	in := NewInputState(DefaultDeadZone)
	in.Sample(RawInput{}.Press(ButtonConfirm))
	in.Reset()

	in.Sample(RawInput{}.Press(ButtonConfirm))
	if !in.Pressed(ButtonConfirm) {
		t.Error("after Reset a held button should produce a fresh edge")
	}
}
