package core

// Action represents a semantic game action, abstracted from the physical
// input source. The steering wheel, keyboard and serial encoder bridge all
// reduce to the same actions, so the simulation never sees raw hardware.
type Action int

const (
	ActionNone Action = iota
	// ActionCycle advances the inventory highlight.
	ActionCycle
	// ActionCycleBack reverses the highlight; a keyboard convenience with
	// no dedicated cabinet button.
	ActionCycleBack
	// ActionDeliver drops the highlighted stack at the zone under the viewer.
	ActionDeliver
	ActionPause
	ActionRestart
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCycle:
		return "Cycle"
	case ActionCycleBack:
		return "CycleBack"
	case ActionDeliver:
		return "Deliver"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps an action name back to its Action; ok is false for
// unknown names. The names are stable: replay files and the websocket
// input protocol both use them on the wire.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "Cycle":
		return ActionCycle, true
	case "CycleBack":
		return ActionCycleBack, true
	case "Deliver":
		return ActionDeliver, true
	case "Pause":
		return ActionPause, true
	case "Restart":
		return ActionRestart, true
	case "Quit":
		return ActionQuit, true
	default:
		return ActionNone, false
	}
}

// InputFrame represents the input state for a single simulation tick.
// Steering is a continuous axis in [-1, 1]; Actions hold the discrete edge
// events that fired during the frame.
type InputFrame struct {
	// Steering is the normalized lateral axis, negative = left.
	Steering float64

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Steering = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Steering = f.Steering
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
