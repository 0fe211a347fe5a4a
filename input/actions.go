package input

// MapAction appends binding to name's binding list, creating the action if
// unknown. Strings are used for action names rather than an integer
// enum so game code can bind actions at startup from configuration
// (spec.md §9 design note).
func (m *Manager) MapAction(name string, binding Binding) {
	m.actions[name] = append(m.actions[name], binding)
}

// UnmapAction removes the first binding in name's list equal to binding, if
// any.
func (m *Manager) UnmapAction(name string, binding Binding) {
	bindings := m.actions[name]
	for i, b := range bindings {
		if b == binding {
			m.actions[name] = append(bindings[:i], bindings[i+1:]...)
			return
		}
	}
}

// ClearAction removes every binding for name.
func (m *Manager) ClearAction(name string) { delete(m.actions, name) }

// ClearAllActions removes every action from the map.
func (m *Manager) ClearAllActions() { m.actions = make(map[string][]Binding) }

// bindingPressed reports whether b is currently held, dispatching on kind.
func (m *Manager) bindingPressed(b Binding) bool {
	switch b.Kind {
	case BindingKey:
		return m.Pressed(b.Key)
	case BindingMouseButton:
		return m.MouseButtonPressed(b.MouseButton)
	case BindingGamepadButton:
		return m.GamepadButtonPressed(b.GamepadID, b.GamepadButton)
	default:
		return false
	}
}

func (m *Manager) bindingJustPressed(b Binding) bool {
	switch b.Kind {
	case BindingKey:
		return m.JustPressed(b.Key)
	case BindingMouseButton:
		return m.MouseButtonJustPressed(b.MouseButton)
	case BindingGamepadButton:
		return m.GamepadButtonJustPressed(b.GamepadID, b.GamepadButton)
	default:
		return false
	}
}

func (m *Manager) bindingJustReleased(b Binding) bool {
	switch b.Kind {
	case BindingKey:
		return m.JustReleased(b.Key)
	case BindingMouseButton:
		return m.MouseButtonJustReleased(b.MouseButton)
	case BindingGamepadButton:
		return m.GamepadButtonJustReleased(b.GamepadID, b.GamepadButton)
	default:
		return false
	}
}

// ActionPressed is true iff at least one of name's bindings is currently
// held. Unknown action names return false.
func (m *Manager) ActionPressed(name string) bool {
	for _, b := range m.actions[name] {
		if m.bindingPressed(b) {
			return true
		}
	}
	return false
}

// ActionJustPressed is true iff at least one of name's bindings transitioned
// unpressed→pressed this frame.
func (m *Manager) ActionJustPressed(name string) bool {
	for _, b := range m.actions[name] {
		if m.bindingJustPressed(b) {
			return true
		}
	}
	return false
}

// ActionJustReleased is true iff at least one of name's bindings
// transitioned pressed→unpressed this frame.
func (m *Manager) ActionJustReleased(name string) bool {
	for _, b := range m.actions[name] {
		if m.bindingJustReleased(b) {
			return true
		}
	}
	return false
}

// ActionStrength returns 1.0 if the action is pressed, else 0.0. Reserved
// for future analog-action support; the source this spec was distilled
// from leaves the multi-binding-held case unspecified, so this mirrors it
// exactly rather than inventing a blending rule.
func (m *Manager) ActionStrength(name string) float32 {
	if m.ActionPressed(name) {
		return 1.0
	}
	return 0.0
}

// SequenceDetected scans the ring buffer oldest-to-newest for sequence,
// skipping unrelated intervening entries (spec.md §4.H).
func (m *Manager) SequenceDetected(sequence []Binding) bool {
	return m.ring.detect(sequence)
}

// ConsumeSequence behaves like SequenceDetected but clears the ring buffer
// on a match.
func (m *Manager) ConsumeSequence(sequence []Binding) bool {
	if m.ring.detect(sequence) {
		m.ring.clear()
		return true
	}
	return false
}
