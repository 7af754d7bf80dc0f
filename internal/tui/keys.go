package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
)

type keyMap struct {
	Reset       key.Binding
	Quit        key.Binding
	Undo        key.Binding
	Cut         key.Binding
	Paste       key.Binding
	DeleteWord  key.Binding
	SelectAll   key.Binding
	PassThrough key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Undo:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Cut:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		// Select-all would break sequential entry.
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a")),
		PassThrough: key.NewBinding(key.WithKeys("tab", "shift+tab", "esc", "enter")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.DeleteWord, k.Undo, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Quit},
		{k.DeleteWord, k.Undo, k.Cut, k.Paste},
	}
}

// inputKeyMap keeps the field's editing keys but removes cursor movement, so
// the cursor always stays at the end of the input.
func inputKeyMap() textinput.KeyMap {
	km := textinput.DefaultKeyMap
	km.CharacterForward.SetEnabled(false)
	km.CharacterBackward.SetEnabled(false)
	km.WordForward.SetEnabled(false)
	km.WordBackward.SetEnabled(false)
	km.LineStart.SetEnabled(false)
	km.LineEnd.SetEnabled(false)
	km.DeleteWordForward.SetEnabled(false)
	km.DeleteAfterCursor.SetEnabled(false)
	km.DeleteCharacterForward.SetEnabled(false)
	km.Paste.SetEnabled(false)
	km.AcceptSuggestion.SetEnabled(false)
	km.NextSuggestion.SetEnabled(false)
	km.PrevSuggestion.SetEnabled(false)
	km.DeleteCharacterBackward = key.NewBinding(key.WithKeys("backspace", "ctrl+h", "delete"))
	return km
}
