package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/kanban/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
type keyMap struct {
	NewBoard key.Binding
	NewList  key.Binding
	AddTask  key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Confirm  key.Binding

	MoveListLeft     key.Binding
	MoveListRight    key.Binding
	MoveTaskUp       key.Binding
	MoveTaskDown     key.Binding
	MoveTaskPrevList key.Binding
	MoveTaskNextList key.Binding

	PrevList   key.Binding
	NextList   key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	SwitchPane key.Binding

	Refresh key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(k, help string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
	}
	return keyMap{
		NewBoard: bind(km.NewBoard, "new board"),
		NewList:  bind(km.NewList, "new list"),
		AddTask:  bind(km.AddTask, "add task"),
		Edit:     bind(km.Edit, "edit"),
		Delete:   bind(km.Delete, "delete"),
		Confirm:  bind(km.Confirm, "confirm"),

		MoveListLeft:     bind(km.MoveListLeft, "move list left"),
		MoveListRight:    bind(km.MoveListRight, "move list right"),
		MoveTaskUp:       bind(km.MoveTaskUp, "move task up"),
		MoveTaskDown:     bind(km.MoveTaskDown, "move task down"),
		MoveTaskPrevList: bind(km.MoveTaskPrevList, "task to previous list"),
		MoveTaskNextList: bind(km.MoveTaskNextList, "task to next list"),

		PrevList:   key.NewBinding(key.WithKeys(km.PrevList, "left"), key.WithHelp(km.PrevList, "previous list")),
		NextList:   key.NewBinding(key.WithKeys(km.NextList, "right"), key.WithHelp(km.NextList, "next list")),
		PrevItem:   key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem, "up")),
		NextItem:   key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem, "down")),
		SwitchPane: bind(km.SwitchPane, "switch pane"),

		Refresh: bind(km.Refresh, "refresh"),
		Quit:    key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// shortHelp lists the bindings shown in the footer for a pane.
func (k keyMap) shortHelp(p Pane) []key.Binding {
	if p == BoardsPane {
		return []key.Binding{k.PrevItem, k.NextItem, k.NewBoard, k.Edit, k.Delete, k.SwitchPane, k.Refresh, k.Quit}
	}
	return []key.Binding{
		k.PrevList, k.NextList, k.NewList, k.AddTask, k.Edit, k.Delete,
		k.MoveListLeft, k.MoveListRight, k.MoveTaskUp, k.MoveTaskDown,
		k.MoveTaskPrevList, k.MoveTaskNextList, k.SwitchPane, k.Quit,
	}
}
