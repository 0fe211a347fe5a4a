package input

// gamepadState holds one gamepad's per-frame snapshot: button set, axis
// map, connection flag, and vibration intensity (spec.md §3.7).
type gamepadState struct {
	connected bool
	buttons   map[GamepadButton]bool
	axes      map[GamepadAxis]float32
	vibration float32
}

func newGamepadState() *gamepadState {
	return &gamepadState{buttons: make(map[GamepadButton]bool), axes: make(map[GamepadAxis]float32)}
}

func (g *gamepadState) clone() *gamepadState {
	c := newGamepadState()
	c.connected = g.connected
	c.vibration = g.vibration
	for k, v := range g.buttons {
		c.buttons[k] = v
	}
	for k, v := range g.axes {
		c.axes[k] = v
	}
	return c
}

// resetButtonsAndAxes clears button and axis state, as Manager.Clear does,
// preserving connection and vibration per spec.md §4.H "input clear".
func (g *gamepadState) resetButtonsAndAxes() {
	g.buttons = make(map[GamepadButton]bool)
	g.axes = make(map[GamepadAxis]float32)
}
