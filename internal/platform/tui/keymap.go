package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/polyfit/internal/core"
)

// KeyMap binds keys to game actions. It doubles as the help bar source.
type KeyMap struct {
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	RotateRight   key.Binding
	RotateLeft    key.Binding
	MirrorH       key.Binding
	MirrorV       key.Binding
	Confirm       key.Binding
	OtherPosition key.Binding
	Park          key.Binding
	Unpark        key.Binding
	Release       key.Binding
	NextPanel     key.Binding
	Pause         key.Binding
	Restart       key.Binding
	Back          key.Binding
	Quit          key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:          key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "piece")),
		Right:         key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "piece")),
		Up:            key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "outline")),
		Down:          key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "outline")),
		RotateRight:   key.NewBinding(key.WithKeys("x", "e"), key.WithHelp("x", "rotate")),
		RotateLeft:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate back")),
		MirrorH:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "flip ↕")),
		MirrorV:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "flip ↔")),
		Confirm:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		OtherPosition: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "other spot")),
		Park:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "park")),
		Unpark:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unpark")),
		Release:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "take back")),
		NextPanel:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tray/parking")),
		Pause:         key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:          key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.RotateRight, k.MirrorH, k.OtherPosition, k.Park, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.RotateRight, k.RotateLeft, k.MirrorH, k.MirrorV},
		{k.Confirm, k.OtherPosition, k.Release},
		{k.Park, k.Unpark, k.NextPanel},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// bindings pairs each action with its binding, in match order.
func (k KeyMap) bindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.RotateRight, core.ActionRotateRight},
		{k.RotateLeft, core.ActionRotateLeft},
		{k.MirrorH, core.ActionMirrorHorizontal},
		{k.MirrorV, core.ActionMirrorVertical},
		{k.Confirm, core.ActionConfirm},
		{k.OtherPosition, core.ActionOtherPosition},
		{k.Park, core.ActionPark},
		{k.Unpark, core.ActionUnpark},
		{k.Release, core.ActionRelease},
		{k.NextPanel, core.ActionNextPanel},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.keys.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
