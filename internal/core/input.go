package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - flap, also advances between screens
	ActionConfirm        // Enter - confirm name entry or advance
	ActionDelete         // Backspace - delete last typed character
	ActionQuit           // Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionDelete:
		return "Delete"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input snapshot for a single simulation tick.
// Actions are edge-triggered: set once per press during the frame.
type InputFrame struct {
	Actions map[Action]bool

	// Chars holds characters typed during this frame, in order.
	Chars []rune

	// Elapsed is wall-clock seconds since the game started.
	Elapsed float64

	// Delta is the real time in seconds since the previous frame.
	Delta float64
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

// Type queues a typed character for this frame.
func (f *InputFrame) Type(r rune) {
	f.Chars = append(f.Chars, r)
}

// Clear resets actions and typed characters for the next frame.
// Timing fields are left for the platform to overwrite.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Chars = f.Chars[:0]
}
