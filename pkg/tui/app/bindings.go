package teaui

import "tableflip.dev/corkboard/pkg/interaction"

// Binding documents one input the board responds to.
type Binding struct {
	Input  string
	Action string
}

// KeyBindings lists the keys handled outside the text field.
func KeyBindings() []Binding {
	return []Binding{
		{Input: "n, a", Action: "add a note"},
		{Input: "d", Action: "toggle dark mode"},
		{Input: "esc", Action: "stop editing, or cancel a drag"},
		{Input: "q, ctrl+c", Action: "quit"},
	}
}

// PointerBindings lists what pointer input does for src.
func PointerBindings(src interaction.Source) []Binding {
	if src == interaction.Touch {
		return []Binding{
			{Input: "drag border", Action: "move the note"},
			{Input: "tap border", Action: "edit the note"},
			{Input: "tap text", Action: "edit the note"},
			{Input: "tap ×", Action: "delete the note"},
		}
	}
	return []Binding{
		{Input: "drag border", Action: "move the note"},
		{Input: "click text", Action: "edit the note"},
		{Input: "click ×", Action: "delete the note"},
		{Input: "click board", Action: "stop editing"},
	}
}
