package input_test

import (
	"testing"
	"time"

	"github.com/goud-engine/core/input"
	"github.com/stretchr/testify/require"
)

func TestKeyEdgeDetectionAcrossFrames(t *testing.T) {
	m := input.NewManager()
	t0 := time.Unix(0, 0)

	m.PressKey(input.KeyCode('K'), t0)
	m.AdvanceFrame(t0)
	m.ReleaseKey(input.KeyCode('K'))

	require.False(t, m.JustPressed(input.KeyCode('K')))
	require.True(t, m.JustReleased(input.KeyCode('K')))

	m.AdvanceFrame(t0.Add(time.Millisecond))
	require.False(t, m.JustPressed(input.KeyCode('K')))
	require.False(t, m.JustReleased(input.KeyCode('K')))
}

func TestDeadzoneFiltersSmallAxisValues(t *testing.T) {
	m := input.NewManager()
	m.SetAnalogDeadzone(0.1)

	m.SetGamepadAxis(0, input.GamepadAxisLeftX, 0.05)
	require.Equal(t, float32(0), m.GamepadAxis(0, input.GamepadAxisLeftX))

	m.SetGamepadAxis(0, input.GamepadAxisLeftX, 0.5)
	require.Equal(t, float32(0.5), m.GamepadAxis(0, input.GamepadAxisLeftX))
}

func TestActionDisjunctionAcrossBindings(t *testing.T) {
	m := input.NewManager()
	m.MapAction("jump", input.KeyBinding(input.KeyCode(' ')))
	m.MapAction("jump", input.GamepadButtonBinding(0, input.GamepadButtonSouth))

	require.False(t, m.ActionPressed("jump"))

	now := time.Unix(0, 0)
	m.SetGamepadButton(0, input.GamepadButtonSouth, true, now)
	require.True(t, m.ActionPressed("jump"))

	require.False(t, m.ActionPressed("unregistered-action"))
}

func TestSequenceDetectionSkipsUnrelatedEntries(t *testing.T) {
	m := input.NewManager()
	t0 := time.Unix(0, 0)

	down := input.KeyBinding(input.KeyCode('S'))
	right := input.KeyBinding(input.KeyCode('D'))
	space := input.KeyBinding(input.KeyCode(' '))

	m.PressKey(down.Key, t0)
	m.ReleaseKey(down.Key)
	m.PressKey(down.Key, t0.Add(10*time.Millisecond))
	m.PressKey(right.Key, t0.Add(20*time.Millisecond))
	m.PressKey(space.Key, t0.Add(30*time.Millisecond))

	seq := []input.Binding{down, down, right, space}
	require.True(t, m.SequenceDetected(seq))

	m.AdvanceFrame(t0.Add(300 * time.Millisecond))
	require.False(t, m.SequenceDetected(seq), "entries older than buffer_duration are evicted")
}

func TestConsumeSequenceClearsBufferOnMatch(t *testing.T) {
	m := input.NewManager()
	t0 := time.Unix(0, 0)
	k := input.KeyBinding(input.KeyCode('J'))
	m.PressKey(k.Key, t0)

	require.True(t, m.ConsumeSequence([]input.Binding{k}))
	require.False(t, m.SequenceDetected([]input.Binding{k}))
}

func TestClearPreservesActionsRingAndConnectionState(t *testing.T) {
	m := input.NewManager()
	t0 := time.Unix(0, 0)

	m.MapAction("jump", input.KeyBinding(input.KeyCode(' ')))
	m.SetGamepadConnected(0, true)
	m.PressKey(input.KeyCode('Z'), t0)
	m.SetGamepadVibration(0, 0.8)

	m.Clear()

	require.False(t, m.Pressed(input.KeyCode('Z')))
	require.True(t, m.GamepadConnected(0), "connection state is preserved across Clear")
	require.Equal(t, float32(0.8), m.GamepadVibration(0), "vibration is preserved across Clear")
	require.False(t, m.ActionPressed("jump"), "key state was cleared, but the action map itself survives Clear")
}

func TestVibrationResetsOnDisconnect(t *testing.T) {
	m := input.NewManager()
	m.SetGamepadConnected(0, true)
	m.SetGamepadVibration(0, 1.0)

	m.SetGamepadConnected(0, false)
	require.Equal(t, float32(0), m.GamepadVibration(0))
}

func TestTriggerNormalizationFromRawDomain(t *testing.T) {
	m := input.NewManager()
	m.SetGamepadAxis(0, input.GamepadAxisLeftTrigger, -1)
	require.InDelta(t, 0, m.GamepadLeftTrigger(0), 1e-6)

	m.SetGamepadAxis(0, input.GamepadAxisLeftTrigger, 1)
	require.InDelta(t, 1, m.GamepadLeftTrigger(0), 1e-6)
}
