package practice

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "answer / next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) help() string {
	parts := []key.Binding{k.Up, k.Down, k.Submit, k.Quit}
	out := "a-z select"
	for _, binding := range parts {
		h := binding.Help()
		out += " • " + h.Key + " " + h.Desc
	}
	return out
}

// actionForKey maps a key press to a reducer action.
func actionForKey(keys keyMap, msgKey string, matches func(key.Binding) bool, phase Phase) (Action, bool) {
	switch {
	case matches(keys.Quit):
		return Action{Kind: ActionQuit}, true
	case matches(keys.Up):
		return Action{Kind: ActionMoveUp}, true
	case matches(keys.Down):
		return Action{Kind: ActionMoveDown}, true
	case matches(keys.Submit):
		if phase == PhaseAnswered {
			return Action{Kind: ActionNext}, true
		}
		return Action{Kind: ActionSubmit}, true
	}
	if len(msgKey) == 1 {
		c := msgKey[0]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			return Action{Kind: ActionSelect, Index: int(c - 'a')}, true
		}
	}
	return Action{}, false
}
