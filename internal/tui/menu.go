package tui

import (
	"strconv"
	"strings"
)

// Selection is a menu entry number.
type Selection int

const (
	SelectionUndefined Selection = 0
	SelectionAdd       Selection = 1
	SelectionRemove    Selection = 2
	SelectionList      Selection = 3
	SelectionExit      Selection = 4
)

var menuItems = []string{
	"  1) Add device into registry",
	"  2) Remove device from the registry",
	"  3) List devices",
	"  4) Close this application",
}

const (
	menuRule   = "------------------------------------"
	menuPrompt = "Enter your selection: "
)

func (t *TUI) printMenu() {
	t.println("")
	for _, item := range menuItems {
		t.println(item)
	}
	t.println(menuRule)
	t.print(menuPrompt)
}

// parseSelection converts a menu answer to a Selection. Surrounding
// whitespace is ignored; anything that is not an integer is
// SelectionUndefined.
func parseSelection(line string) Selection {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return SelectionUndefined
	}
	return Selection(n)
}
