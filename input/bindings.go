// Package input implements the per-frame input snapshot, action map, and
// input-sequence ring buffer (spec.md §3.7/§4.G). Keyboard and mouse-button
// codes follow the GLFW convention the teacher's common.KeyCode constants
// already use, so a hostwindow adapter can forward raw GLFW codes directly.
package input

// KeyCode identifies a keyboard key, using the GLFW/ASCII numbering the
// teacher's common.KeyXxx constants already follow.
type KeyCode int

// MouseButton identifies a mouse button, using the GLFW numbering (Left=0,
// Right=1, Middle=2).
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// GamepadButton identifies one button on a gamepad, using the standard
// Xbox-layout ordinal numbering.
type GamepadButton int

const (
	GamepadButtonSouth GamepadButton = iota
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonDPadUp
	GamepadButtonDPadRight
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
)

// GamepadAxis identifies one analog axis on a gamepad.
type GamepadAxis int

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

// BindingKind discriminates the Binding tagged union (spec.md §3.7).
type BindingKind int

const (
	BindingKey BindingKind = iota
	BindingMouseButton
	BindingGamepadButton
)

// Binding is a single input source reference: {Key, MouseButton,
// GamepadButton{gamepad_id,button}}. Only the fields matching Kind are
// meaningful; the others are zero.
type Binding struct {
	Kind          BindingKind
	Key           KeyCode
	MouseButton   MouseButton
	GamepadID     int
	GamepadButton GamepadButton
}

// KeyBinding constructs a Binding for keyboard key k.
func KeyBinding(k KeyCode) Binding { return Binding{Kind: BindingKey, Key: k} }

// MouseButtonBinding constructs a Binding for mouse button b.
func MouseButtonBinding(b MouseButton) Binding {
	return Binding{Kind: BindingMouseButton, MouseButton: b}
}

// GamepadButtonBinding constructs a Binding for button b on gamepad id.
func GamepadButtonBinding(id int, b GamepadButton) Binding {
	return Binding{Kind: BindingGamepadButton, GamepadID: id, GamepadButton: b}
}
