// Package hostwindow is the GLFW-backed reference host adapter: it owns
// the OS window and OpenGL context, translating raw GLFW callbacks into
// input.Manager calls so a host loop never touches GLFW directly (spec.md
// §2's frame-control boundary — the host drives the loop, the core never
// polls a platform window itself). Grounded on the teacher's
// engine/window/window_glfw.go callback-registration shape, adapted from
// wgpu's surface-descriptor handshake to owning an OpenGL 3.3 core context
// directly, since this module's render backend is internal/glbackend
// rather than wgpu.
package hostwindow

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/goud-engine/core/input"
)

func init() {
	// GLFW and its GL context must be touched from one consistent OS
	// thread for the process lifetime (mirrors the teacher's
	// runtime.LockOSThread() call in newPlatformWindow).
	runtime.LockOSThread()
}

type config struct {
	title     string
	width     int
	height    int
	resizable bool
}

// Option configures a Window at construction time.
type Option func(*config)

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *config) { c.width = width; c.height = height }
}

// WithResizable sets whether the user can resize the window.
func WithResizable(resizable bool) Option { return func(c *config) { c.resizable = resizable } }

// Window owns a GLFW window and OpenGL 3.3 core context, and feeds every
// keyboard/mouse/gamepad event it observes into an input.Manager.
type Window struct {
	win    *glfw.Window
	mgr    *input.Manager
	width  int
	height int
}

// New creates the GLFW window, makes its OpenGL context current on the
// calling thread, and wires GLFW's callbacks to manager. The caller must
// construct internal/glbackend.New() only after New returns, since a
// current GL context is a precondition glbackend.New() relies on.
func New(manager *input.Manager, opts ...Option) (*Window, error) {
	cfg := config{title: "goud-engine", width: 1280, height: 720, resizable: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()

	fbWidth, fbHeight := win.GetFramebufferSize()
	w := &Window{win: win, mgr: manager, width: fbWidth, height: fbHeight}
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	win, mgr := w.win, w.mgr

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		now := time.Now()
		switch action {
		case glfw.Press, glfw.Repeat:
			mgr.PressKey(input.KeyCode(key), now)
		case glfw.Release:
			mgr.ReleaseKey(input.KeyCode(key))
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		now := time.Now()
		b := mouseButtonFromGLFW(button)
		switch action {
		case glfw.Press:
			mgr.PressMouseButton(b, now)
		case glfw.Release:
			mgr.ReleaseMouseButton(b)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		mgr.SetMousePosition(mgl32.Vec2{float32(xpos), float32(ypos)})
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		mgr.AddScrollDelta(mgl32.Vec2{float32(xoff), float32(yoff)})
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
	})
}

func mouseButtonFromGLFW(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonRight:
		return input.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle
	default:
		return input.MouseButtonLeft
	}
}

// PollEvents pumps the GLFW event queue, invoking every installed
// callback synchronously before returning.
func (w *Window) PollEvents() { glfw.PollEvents() }

// PollGamepads reads every present joystick's gamepad state and feeds
// connect/disconnect transitions and button/axis state into manager.
// GLFW has no gamepad callbacks; this must be called once per frame,
// typically right after manager.AdvanceFrame.
func (w *Window) PollGamepads(mgr *input.Manager) {
	now := time.Now()
	for j := glfw.Joystick1; j <= glfw.Joystick16; j++ {
		id := int(j)
		if !j.Present() || !j.IsGamepad() {
			mgr.SetGamepadConnected(id, false)
			continue
		}
		mgr.SetGamepadConnected(id, true)

		state := j.GetGamepadState()
		if state == nil {
			continue
		}
		for glfwButton, button := range gamepadButtonTable {
			mgr.SetGamepadButton(id, button, state.Buttons[glfwButton] == glfw.Press, now)
		}
		for glfwAxis, axis := range gamepadAxisTable {
			mgr.SetGamepadAxis(id, axis, state.Axes[glfwAxis])
		}
	}
}

var gamepadButtonTable = map[glfw.GamepadButton]input.GamepadButton{
	glfw.ButtonA:           input.GamepadButtonSouth,
	glfw.ButtonB:           input.GamepadButtonEast,
	glfw.ButtonX:           input.GamepadButtonWest,
	glfw.ButtonY:           input.GamepadButtonNorth,
	glfw.ButtonLeftBumper:  input.GamepadButtonLeftBumper,
	glfw.ButtonRightBumper: input.GamepadButtonRightBumper,
	glfw.ButtonBack:        input.GamepadButtonSelect,
	glfw.ButtonStart:       input.GamepadButtonStart,
	glfw.ButtonLeftThumb:   input.GamepadButtonLeftStick,
	glfw.ButtonRightThumb:  input.GamepadButtonRightStick,
	glfw.ButtonDpadUp:      input.GamepadButtonDPadUp,
	glfw.ButtonDpadRight:   input.GamepadButtonDPadRight,
	glfw.ButtonDpadDown:    input.GamepadButtonDPadDown,
	glfw.ButtonDpadLeft:    input.GamepadButtonDPadLeft,
}

var gamepadAxisTable = map[glfw.GamepadAxis]input.GamepadAxis{
	glfw.AxisLeftX:        input.GamepadAxisLeftX,
	glfw.AxisLeftY:        input.GamepadAxisLeftY,
	glfw.AxisRightX:       input.GamepadAxisRightX,
	glfw.AxisRightY:       input.GamepadAxisRightY,
	glfw.AxisLeftTrigger:  input.GamepadAxisLeftTrigger,
	glfw.AxisRightTrigger: input.GamepadAxisRightTrigger,
}

// ShouldClose reports whether the window has received a close request
// (the user clicked the close button, or the host called RequestClose).
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// RequestClose marks the window for closing on the next ShouldClose check.
func (w *Window) RequestClose() { w.win.SetShouldClose(true) }

// SwapBuffers presents the frame rendered since the last call.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Close destroys the window and terminates GLFW. The caller must not use
// w or call glfw functions afterward.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
