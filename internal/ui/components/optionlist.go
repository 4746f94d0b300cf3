package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upskill-labs/upskill/internal/ui/theme"
)

// OptionList presents the answer options for one question. Unlike a
// quiz widget it never reveals the correct answer; it only tracks the
// highlighted row and the option the candidate has locked in.
type OptionList struct {
	Options []string

	// Cursor is the highlighted row.
	Cursor int

	// Chosen is the recorded answer, or -1 when unanswered.
	Chosen int
}

// NewOptionList creates an option list with chosen pre-set to the
// candidate's stored answer, or -1 for none.
func NewOptionList(options []string, chosen int) OptionList {
	if chosen < 0 || chosen >= len(options) {
		chosen = -1
	}
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return OptionList{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Choosing is reported through
// Chosen; the screen reads it after each update.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ", "space":
		o.Chosen = o.Cursor
	default:
		// Number keys pick an option directly.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(o.Options) {
				o.Cursor = idx
				o.Chosen = idx
			}
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %d)  %s", prefix, marker, i+1, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
