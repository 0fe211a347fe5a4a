package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/goud-engine/core/internal/enginelog"
)

// defaultAnalogDeadzone is the out-of-the-box deadzone (spec.md §3.7).
const defaultAnalogDeadzone = float32(0.0)

// Manager is the engine-core input resource: current/previous snapshots for
// keyboard, mouse, and gamepads; accumulated mouse/scroll deltas; the
// action map; and the sequence-detection ring buffer (spec.md §3.7/§4.G).
// Designed to be inserted as a World resource and driven by a host adapter
// (see hostwindow) that translates platform events into these setters.
type Manager struct {
	currentKeys  map[KeyCode]bool
	previousKeys map[KeyCode]bool

	currentMouseButtons  map[MouseButton]bool
	previousMouseButtons map[MouseButton]bool

	mousePosition mgl32.Vec2
	mouseDelta    mgl32.Vec2
	scrollDelta   mgl32.Vec2

	gamepads         map[int]*gamepadState
	previousGamepads map[int]*gamepadState

	analogDeadzone float32

	actions map[string][]Binding

	ring *ringBuffer

	logger *enginelog.Logger
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger attaches l so Manager can report diagnostics, such as a
// gamepad disconnecting with vibration still active.
func WithLogger(l *enginelog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager returns a Manager with empty state and the default deadzone.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		currentKeys:          make(map[KeyCode]bool),
		previousKeys:         make(map[KeyCode]bool),
		currentMouseButtons:  make(map[MouseButton]bool),
		previousMouseButtons: make(map[MouseButton]bool),
		gamepads:             make(map[int]*gamepadState),
		previousGamepads:     make(map[int]*gamepadState),
		analogDeadzone:       defaultAnalogDeadzone,
		actions:              make(map[string][]Binding),
		ring:                 newRingBuffer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) gamepad(id int) *gamepadState {
	g, ok := m.gamepads[id]
	if !ok {
		g = newGamepadState()
		m.gamepads[id] = g
	}
	return g
}

func (m *Manager) previousGamepad(id int) *gamepadState {
	if g, ok := m.previousGamepads[id]; ok {
		return g
	}
	return newGamepadState()
}

// --- Keyboard ---

// PressKey marks k as pressed and buffers the edge in the sequence ring if
// it was not already pressed (spec.md §3.7: "buffered ONLY on the edge").
func (m *Manager) PressKey(k KeyCode, now time.Time) {
	if !m.currentKeys[k] {
		m.ring.push(KeyBinding(k), now)
	}
	m.currentKeys[k] = true
}

// ReleaseKey marks k as released.
func (m *Manager) ReleaseKey(k KeyCode) { delete(m.currentKeys, k) }

// Pressed reports whether k is currently held.
func (m *Manager) Pressed(k KeyCode) bool { return m.currentKeys[k] }

// JustPressed reports whether k transitioned unpressed→pressed this frame.
func (m *Manager) JustPressed(k KeyCode) bool { return m.currentKeys[k] && !m.previousKeys[k] }

// JustReleased reports whether k transitioned pressed→unpressed this frame.
func (m *Manager) JustReleased(k KeyCode) bool { return !m.currentKeys[k] && m.previousKeys[k] }

// --- Mouse ---

// PressMouseButton marks b as pressed and buffers the edge.
func (m *Manager) PressMouseButton(b MouseButton, now time.Time) {
	if !m.currentMouseButtons[b] {
		m.ring.push(MouseButtonBinding(b), now)
	}
	m.currentMouseButtons[b] = true
}

// ReleaseMouseButton marks b as released.
func (m *Manager) ReleaseMouseButton(b MouseButton) { delete(m.currentMouseButtons, b) }

// MouseButtonPressed reports whether b is currently held.
func (m *Manager) MouseButtonPressed(b MouseButton) bool { return m.currentMouseButtons[b] }

// MouseButtonJustPressed reports the unpressed→pressed edge for b.
func (m *Manager) MouseButtonJustPressed(b MouseButton) bool {
	return m.currentMouseButtons[b] && !m.previousMouseButtons[b]
}

// MouseButtonJustReleased reports the pressed→unpressed edge for b.
func (m *Manager) MouseButtonJustReleased(b MouseButton) bool {
	return !m.currentMouseButtons[b] && m.previousMouseButtons[b]
}

// SetMousePosition updates the current position, accumulating the
// difference from the prior position into this frame's mouse delta.
func (m *Manager) SetMousePosition(pos mgl32.Vec2) {
	m.mouseDelta = m.mouseDelta.Add(pos.Sub(m.mousePosition))
	m.mousePosition = pos
}

// MousePosition returns the current cursor position.
func (m *Manager) MousePosition() mgl32.Vec2 { return m.mousePosition }

// MouseDelta returns the accumulated movement since the last AdvanceFrame.
func (m *Manager) MouseDelta() mgl32.Vec2 { return m.mouseDelta }

// AddScrollDelta accumulates a scroll-wheel increment for this frame.
func (m *Manager) AddScrollDelta(delta mgl32.Vec2) { m.scrollDelta = m.scrollDelta.Add(delta) }

// ScrollDelta returns the accumulated scroll movement since the last
// AdvanceFrame.
func (m *Manager) ScrollDelta() mgl32.Vec2 { return m.scrollDelta }

// --- Gamepad ---

// SetGamepadConnected updates the connection flag for gamepad id. On
// disconnect, vibration is reset to 0 (a behavior the original engine's
// platform layer relies on but the distilled core contract omits).
func (m *Manager) SetGamepadConnected(id int, connected bool) {
	g := m.gamepad(id)
	g.connected = connected
	if !connected {
		if g.vibration != 0 {
			m.logger.Printf("gamepad %d disconnected with vibration %.2f active, resetting to 0", id, g.vibration)
		}
		g.vibration = 0
	}
}

// GamepadConnected reports whether gamepad id is currently connected.
func (m *Manager) GamepadConnected(id int) bool { return m.gamepad(id).connected }

// ConnectedGamepadCount returns how many gamepads currently report connected.
func (m *Manager) ConnectedGamepadCount() int {
	n := 0
	for _, g := range m.gamepads {
		if g.connected {
			n++
		}
	}
	return n
}

// ConnectedGamepads returns the ids of every currently connected gamepad.
func (m *Manager) ConnectedGamepads() []int {
	ids := make([]int, 0, len(m.gamepads))
	for id, g := range m.gamepads {
		if g.connected {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetGamepadButton marks button b on gamepad id as pressed or released,
// buffering the press edge.
func (m *Manager) SetGamepadButton(id int, b GamepadButton, pressed bool, now time.Time) {
	g := m.gamepad(id)
	if pressed && !g.buttons[b] {
		m.ring.push(GamepadButtonBinding(id, b), now)
	}
	if pressed {
		g.buttons[b] = true
	} else {
		delete(g.buttons, b)
	}
}

// GamepadButtonPressed reports whether button b on gamepad id is held.
func (m *Manager) GamepadButtonPressed(id int, b GamepadButton) bool {
	return m.gamepad(id).buttons[b]
}

// GamepadButtonJustPressed reports the unpressed→pressed edge for button b
// on gamepad id.
func (m *Manager) GamepadButtonJustPressed(id int, b GamepadButton) bool {
	return m.gamepad(id).buttons[b] && !m.previousGamepad(id).buttons[b]
}

// GamepadButtonJustReleased reports the pressed→unpressed edge for button b
// on gamepad id.
func (m *Manager) GamepadButtonJustReleased(id int, b GamepadButton) bool {
	return !m.gamepad(id).buttons[b] && m.previousGamepad(id).buttons[b]
}

// SetGamepadAxis stores the raw value for axis a on gamepad id. The
// deadzone is applied at query time (GamepadAxis), not here, so changing
// SetAnalogDeadzone retroactively affects reads within the same frame.
func (m *Manager) SetGamepadAxis(id int, a GamepadAxis, value float32) {
	m.gamepad(id).axes[a] = value
}

// SetAnalogDeadzone replaces the deadzone applied to every axis query.
func (m *Manager) SetAnalogDeadzone(deadzone float32) { m.analogDeadzone = deadzone }

// GamepadAxis returns 0 if unknown or below the deadzone in absolute value;
// otherwise the raw stored value (spec.md Testable Property 8).
func (m *Manager) GamepadAxis(id int, a GamepadAxis) float32 {
	v := m.gamepad(id).axes[a]
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs < m.analogDeadzone {
		return 0
	}
	return v
}

// GamepadLeftStick returns the left stick as a vec2 of (LeftX, LeftY), each
// deadzone-filtered.
func (m *Manager) GamepadLeftStick(id int) mgl32.Vec2 {
	return mgl32.Vec2{m.GamepadAxis(id, GamepadAxisLeftX), m.GamepadAxis(id, GamepadAxisLeftY)}
}

// GamepadRightStick returns the right stick as a vec2 of (RightX, RightY),
// each deadzone-filtered.
func (m *Manager) GamepadRightStick(id int) mgl32.Vec2 {
	return mgl32.Vec2{m.GamepadAxis(id, GamepadAxisRightX), m.GamepadAxis(id, GamepadAxisRightY)}
}

// GamepadLeftTrigger normalizes the left trigger's raw [-1,1] axis domain
// to [0,1] via (raw+1)/2, after deadzone filtering.
func (m *Manager) GamepadLeftTrigger(id int) float32 {
	return (m.GamepadAxis(id, GamepadAxisLeftTrigger) + 1) / 2
}

// GamepadRightTrigger normalizes the right trigger the same way as
// GamepadLeftTrigger.
func (m *Manager) GamepadRightTrigger(id int) float32 {
	return (m.GamepadAxis(id, GamepadAxisRightTrigger) + 1) / 2
}

// SetGamepadVibration sets the vibration intensity for gamepad id, clamped
// to [0, 1].
func (m *Manager) SetGamepadVibration(id int, intensity float32) {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	m.gamepad(id).vibration = intensity
}

// GamepadVibration returns the current vibration intensity for gamepad id.
func (m *Manager) GamepadVibration(id int) float32 { return m.gamepad(id).vibration }

// --- Frame control ---

// AdvanceFrame snapshots the current state as "previous" for next frame's
// edge detection, resets the per-frame accumulated deltas, and evicts ring
// buffer entries older than the buffer duration relative to now.
func (m *Manager) AdvanceFrame(now time.Time) {
	m.previousKeys = cloneBoolMap(m.currentKeys)
	m.previousMouseButtons = cloneBoolMap(m.currentMouseButtons)

	m.previousGamepads = make(map[int]*gamepadState, len(m.gamepads))
	for id, g := range m.gamepads {
		m.previousGamepads[id] = g.clone()
	}

	m.mouseDelta = mgl32.Vec2{}
	m.scrollDelta = mgl32.Vec2{}

	m.ring.evictExpired(now)
}

// Clear empties current and previous state for keys, mouse buttons, and
// gamepad buttons/axes, and zeros the deltas (spec.md §4.H "input clear",
// e.g. on window-focus loss). It preserves the action map, ring buffer,
// connection state, and vibration settings.
func (m *Manager) Clear() {
	m.currentKeys = make(map[KeyCode]bool)
	m.previousKeys = make(map[KeyCode]bool)
	m.currentMouseButtons = make(map[MouseButton]bool)
	m.previousMouseButtons = make(map[MouseButton]bool)
	m.mouseDelta = mgl32.Vec2{}
	m.scrollDelta = mgl32.Vec2{}
	for _, g := range m.gamepads {
		g.resetButtonsAndAxes()
	}
	for _, g := range m.previousGamepads {
		g.resetButtonsAndAxes()
	}
}

func cloneBoolMap[K comparable](m map[K]bool) map[K]bool {
	c := make(map[K]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
