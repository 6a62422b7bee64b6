package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Edit   key.Binding
	Rename key.Binding
	Type   key.Binding
	Remove key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "выбор поля")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("", "")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "новое поле")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "значение")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "переименовать")),
		Type:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "тип")),
		Remove: key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "удалить")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "сохранить")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	}
}

func (k keyMap) helpView(st styles) string {
	pairs := []key.Binding{k.Up, k.New, k.Edit, k.Rename, k.Type, k.Remove, k.Save, k.Quit}
	var parts []string
	for _, b := range pairs {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, st.helpKey.Render(h.Key)+" "+st.help.Render(h.Desc))
	}
	return strings.Join(parts, st.help.Render("  ·  "))
}
