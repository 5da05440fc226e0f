package launcher

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/strutfield/ipenrich/internal/tui"
	"github.com/strutfield/ipenrich/internal/tui/chord"
)

// View renders the launcher model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := tui.TitleStyle.Render("ipenrich") + " " +
		tui.HelpStyle.Render("IP enrichment")

	var body string
	if m.body == viewForm && m.form != nil {
		body = m.form.view()
	} else {
		body = m.menuView()
	}

	return fmt.Sprintf("%s\n%s\n%s", header, body, m.statusBar())
}

// statusBar renders the one-line status surface padded to the terminal
// width. The armed style makes the pending chord visible at a glance.
func (m Model) statusBar() string {
	text := " " + m.status.Text()
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(m.width), "…")
		if pad := m.width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	if m.chord.State() == chord.StateArmed {
		return tui.ArmedStyle.Render(text)
	}
	return tui.StatusBarStyle.Render(text)
}
