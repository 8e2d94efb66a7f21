package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Cycler is a horizontal value picker for form fields with a small fixed
// set of choices. Left/right cycle through the values.
type Cycler struct {
	Label  string
	Values []string
	Index  int
}

// NewCycler creates a cycler starting at the given value, or the first
// one when the value is not present.
func NewCycler(label string, values []string, current string) Cycler {
	index := 0
	for i, v := range values {
		if v == current {
			index = i
			break
		}
	}
	return Cycler{
		Label:  label,
		Values: values,
		Index:  index,
	}
}

// Update handles keyboard cycling.
func (c Cycler) Update(msg tea.Msg) (Cycler, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Index--
		if c.Index < 0 {
			c.Index = len(c.Values) - 1
		}
	case "right", "l":
		c.Index++
		if c.Index >= len(c.Values) {
			c.Index = 0
		}
	}

	return c, nil
}

// View renders the cycler. focused controls the highlight.
func (c Cycler) View(focused bool) string {
	value := ""
	if c.Index >= 0 && c.Index < len(c.Values) {
		value = c.Values[c.Index]
	}

	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("◂ " + value + " ▸")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).
		Render("  " + value)
}

// Value returns the currently selected value.
func (c Cycler) Value() string {
	if c.Index < 0 || c.Index >= len(c.Values) {
		return ""
	}
	return c.Values[c.Index]
}
