package core

// Action is a semantic input, decoupled from the keys that produce it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRotateRight
	ActionRotateLeft
	ActionMirrorHorizontal
	ActionMirrorVertical
	ActionConfirm       // commit the selected piece into the selected outline
	ActionOtherPosition // move the held piece to another anchor
	ActionPark          // move the selected tray piece to a parking slot
	ActionUnpark        // bring a parked piece back to the tray
	ActionRelease       // take the held piece back out of its outline
	ActionNextPanel     // switch focus between tray and parking
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = map[Action]string{
	ActionNone:             "None",
	ActionLeft:             "Left",
	ActionRight:            "Right",
	ActionUp:               "Up",
	ActionDown:             "Down",
	ActionRotateRight:      "RotateRight",
	ActionRotateLeft:       "RotateLeft",
	ActionMirrorHorizontal: "MirrorHorizontal",
	ActionMirrorVertical:   "MirrorVertical",
	ActionConfirm:          "Confirm",
	ActionOtherPosition:    "OtherPosition",
	ActionPark:             "Park",
	ActionUnpark:           "Unpark",
	ActionRelease:          "Release",
	ActionNextPanel:        "NextPanel",
	ActionBack:             "Back",
	ActionRestart:          "Restart",
	ActionQuit:             "Quit",
	ActionPause:            "Pause",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone copies the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}

// Frame builds a frame holding the given actions.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
