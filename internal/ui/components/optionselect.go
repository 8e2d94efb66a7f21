package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// OptionSelect is a multiple-choice option selector. Unlike an exam
// review widget it never colors options by correctness: while answering,
// the client does not know the correct answer.
type OptionSelect struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 when nothing is chosen yet
}

// NewOptionSelect creates a selector. chosen preselects an option when the
// user navigates back to an already-answered question; pass -1 otherwise.
func NewOptionSelect(question string, options []string, chosen int) OptionSelect {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionSelect{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Init returns nil.
func (o OptionSelect) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and choice.
func (o OptionSelect) Update(msg tea.Msg) (OptionSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	}

	return o, nil
}

// View renders the selector.
func (o OptionSelect) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		label := optionLabel(i)
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if i == o.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// ChosenOption returns the text of the chosen option. ok is false when
// nothing is chosen.
func (o OptionSelect) ChosenOption() (string, bool) {
	if o.Chosen < 0 || o.Chosen >= len(o.Options) {
		return "", false
	}
	return o.Options[o.Chosen], true
}

func optionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
